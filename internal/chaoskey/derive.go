package chaoskey

import "fmt"

const (
	// MasterKeySize is the length of a master key in bytes.
	MasterKeySize = 32

	// RoundKeySize is the length of one round key in bytes.
	RoundKeySize = 16

	// DefaultRounds is the default number of round keys.
	DefaultRounds = 10

	masterDraws = 4
)

// checkSequences verifies that every sequence holds at least min samples and
// that all four have the same length, which it returns.
func checkSequences(min int, seqs ...[]float64) (int, error) {
	for i, s := range seqs {
		if len(s) < min {
			return 0, fmt.Errorf("%w: sequence %d has %d samples, need at least %d", ErrInsufficientSamples, i, len(s), min)
		}
	}
	n := len(seqs[0])
	for i, s := range seqs[1:] {
		if len(s) != n {
			return 0, fmt.Errorf("%w: sequence %d has %d samples, sequence 0 has %d", ErrSequenceMismatch, i+1, len(s), n)
		}
	}
	return n, nil
}

// resample quantizes draws samples at indices step-1, 2*step-1, ... and
// appends them to dst.
func resample(dst []byte, seq []float64, draws, step int) ([]byte, error) {
	for k := 1; k <= draws; k++ {
		idx := k*step - 1
		q, err := Quantize(seq[idx])
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", idx, err)
		}
		dst = append(dst, q[:]...)
	}
	return dst, nil
}

// draw validates the sequences and returns draws quantized samples from each,
// concatenated as x1, y1, x2, y2.
func draw(x1, x2, y1, y2 []float64, draws int) ([]byte, error) {
	n, err := checkSequences(draws, x1, x2, y1, y2)
	if err != nil {
		return nil, err
	}
	step := n / draws

	buf := make([]byte, 0, 4*draws*QuantizedSize)
	for _, seq := range [][]float64{x1, y1, x2, y2} {
		if buf, err = resample(buf, seq, draws, step); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// DeriveMasterKey builds a 32-byte key from four sample sequences of at least
// four samples each.
func DeriveMasterKey(x1, x2, y1, y2 []float64) ([]byte, error) {
	return draw(x1, x2, y1, y2, masterDraws)
}

// DeriveRoundKeys builds rounds independent 16-byte round keys. Each sequence
// must hold at least 2*rounds samples.
func DeriveRoundKeys(x1, x2, y1, y2 []float64, rounds int) ([][]byte, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}
	buf, err := draw(x1, x2, y1, y2, 2*rounds)
	if err != nil {
		return nil, err
	}

	keys := make([][]byte, rounds)
	for i := range keys {
		keys[i] = buf[i*RoundKeySize : (i+1)*RoundKeySize : (i+1)*RoundKeySize]
	}
	return keys, nil
}
