package rijndael

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestBlockToState_RowMajor(t *testing.T) {
	block := make([]byte, BlockSize)
	for i := range block {
		block[i] = byte(i)
	}

	s, err := BlockToState(block)
	if err != nil {
		t.Fatalf("BlockToState() error = %v", err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if s[i][j] != byte(4*i+j) {
				t.Errorf("state[%d][%d] = %d, want %d", i, j, s[i][j], 4*i+j)
			}
		}
	}

	if got := StateToBlock(s); !bytes.Equal(got, block) {
		t.Errorf("StateToBlock() = %x, want %x", got, block)
	}
}

func TestBlockToState_InvalidSize(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		_, err := BlockToState(make([]byte, n))
		if !errors.Is(err, ErrMalformedState) {
			t.Errorf("BlockToState(%d bytes) error = %v, want ErrMalformedState", n, err)
		}
	}
}

func randomState(r *rand.Rand) State {
	var s State
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = byte(r.Intn(256))
		}
	}
	return s
}

func TestShiftRows(t *testing.T) {
	s := State{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	want := State{
		{0, 1, 2, 3},
		{5, 6, 7, 4},
		{10, 11, 8, 9},
		{15, 12, 13, 14},
	}

	got := s
	shiftRows(&got)
	if got != want {
		t.Errorf("shiftRows() = %v, want %v", got, want)
	}

	invShiftRows(&got)
	if got != s {
		t.Errorf("invShiftRows(shiftRows()) = %v, want %v", got, s)
	}
}

func TestMixColumns_KnownRow(t *testing.T) {
	// FIPS-197 column test vector, applied to a row.
	s := State{{0xdb, 0x13, 0x53, 0x45}, {0xf2, 0x0a, 0x22, 0x5c}, {0x01, 0x01, 0x01, 0x01}, {0x2d, 0x26, 0x31, 0x4c}}
	want := State{{0x8e, 0x4d, 0xa1, 0xbc}, {0x9f, 0xdc, 0x58, 0x9d}, {0x01, 0x01, 0x01, 0x01}, {0x4d, 0x7e, 0xbd, 0xf8}}

	got := s
	mixColumns(&got)
	if got != want {
		t.Errorf("mixColumns() = %x, want %x", got, want)
	}
}

func TestRoundTransforms_Inverse(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for n := 0; n < 100; n++ {
		s := randomState(r)

		got := s
		mixColumns(&got)
		invMixColumns(&got)
		if got != s {
			t.Fatalf("invMixColumns(mixColumns(%x)) = %x", s, got)
		}

		got = s
		subBytes(&got)
		invSubBytes(&got)
		if got != s {
			t.Fatalf("invSubBytes(subBytes(%x)) = %x", s, got)
		}

		k := randomState(r)
		got = s
		addRoundKey(&got, &k)
		addRoundKey(&got, &k)
		if got != s {
			t.Fatalf("addRoundKey twice = %x, want %x", got, s)
		}
	}
}
