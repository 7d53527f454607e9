package rijndael

import "fmt"

// keyGrids validates roundKeys and converts each one to a state grid.
func keyGrids(roundKeys [][]byte) ([]State, error) {
	if len(roundKeys) < MinRoundKeys {
		return nil, fmt.Errorf("%w: got %d round keys, want at least %d", ErrMalformedState, len(roundKeys), MinRoundKeys)
	}
	grids := make([]State, len(roundKeys))
	for i, k := range roundKeys {
		if len(k) != BlockSize {
			return nil, fmt.Errorf("%w: round key %d is %d bytes, want %d", ErrMalformedState, i, len(k), BlockSize)
		}
		grids[i], _ = BlockToState(k)
	}
	return grids, nil
}

func encryptState(s *State, keys []State) {
	n := len(keys)
	addRoundKey(s, &keys[0])
	for i := 1; i <= n-2; i++ {
		subBytes(s)
		shiftRows(s)
		mixColumns(s)
		addRoundKey(s, &keys[i])
	}
	subBytes(s)
	shiftRows(s)
	addRoundKey(s, &keys[n-1])
}

func decryptState(s *State, keys []State) {
	n := len(keys)
	addRoundKey(s, &keys[n-1])
	for i := n - 2; i >= 1; i-- {
		invShiftRows(s)
		invSubBytes(s)
		addRoundKey(s, &keys[i])
		invMixColumns(s)
	}
	invShiftRows(s)
	invSubBytes(s)
	addRoundKey(s, &keys[0])
}

// EncryptBlock encrypts one 16-byte block with the given round keys.
func EncryptBlock(block []byte, roundKeys [][]byte) ([]byte, error) {
	keys, err := keyGrids(roundKeys)
	if err != nil {
		return nil, err
	}
	s, err := BlockToState(block)
	if err != nil {
		return nil, err
	}
	encryptState(&s, keys)
	return StateToBlock(s), nil
}

// DecryptBlock reverses EncryptBlock.
func DecryptBlock(block []byte, roundKeys [][]byte) ([]byte, error) {
	keys, err := keyGrids(roundKeys)
	if err != nil {
		return nil, err
	}
	s, err := BlockToState(block)
	if err != nil {
		return nil, err
	}
	decryptState(&s, keys)
	return StateToBlock(s), nil
}
