package rijndael

import "fmt"

// BlockSize is the cipher block size in bytes.
const BlockSize = 16

// MinRoundKeys is the smallest round-key list the cipher accepts.
const MinRoundKeys = 2

// State is the 4x4 byte grid the round transforms operate on.
type State [4][4]byte

// BlockToState maps a 16-byte block onto a state, block[4*i+j] -> state[i][j].
func BlockToState(block []byte) (State, error) {
	var s State
	if len(block) != BlockSize {
		return s, fmt.Errorf("%w: block is %d bytes, want %d", ErrMalformedState, len(block), BlockSize)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = block[4*i+j]
		}
	}
	return s, nil
}

// StateToBlock is the inverse of BlockToState.
func StateToBlock(s State) []byte {
	block := make([]byte, BlockSize)
	for i := 0; i < 4; i++ {
		copy(block[4*i:4*i+4], s[i][:])
	}
	return block
}

func addRoundKey(s, k *State) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] ^= k[i][j]
		}
	}
}

func subBytes(s *State) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = sbox[s[i][j]]
		}
	}
}

func invSubBytes(s *State) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = invSbox[s[i][j]]
		}
	}
}

// shiftRows rotates row i left by i positions.
func shiftRows(s *State) {
	for i := 1; i < 4; i++ {
		var row [4]byte
		for j := 0; j < 4; j++ {
			row[j] = s[i][(j+i)%4]
		}
		s[i] = row
	}
}

// invShiftRows rotates row i right by i positions.
func invShiftRows(s *State) {
	for i := 1; i < 4; i++ {
		var row [4]byte
		for j := 0; j < 4; j++ {
			row[(j+i)%4] = s[i][j]
		}
		s[i] = row
	}
}

// mixColumns multiplies each row by the circulant {2, 3, 1, 1}. Output k
// weights input k by 2, input k+1 by 3 and inputs k+2, k+3 by 1.
func mixColumns(s *State) {
	for i := 0; i < 4; i++ {
		r := s[i]
		for k := 0; k < 4; k++ {
			s[i][k] = mul2[r[k]] ^ mul3[r[(k+1)%4]] ^ r[(k+2)%4] ^ r[(k+3)%4]
		}
	}
}

// invMixColumns multiplies each row by the circulant {14, 11, 13, 9}.
func invMixColumns(s *State) {
	for i := 0; i < 4; i++ {
		r := s[i]
		for k := 0; k < 4; k++ {
			s[i][k] = mul14[r[k]] ^ mul11[r[(k+1)%4]] ^ mul13[r[(k+2)%4]] ^ mul9[r[(k+3)%4]]
		}
	}
}
