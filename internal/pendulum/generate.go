package pendulum

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/vihar-202001110/CryptographyProject/internal/crypto"
)

// SeedSize is the length of a seed produced by NewSeed.
const SeedSize = 32

// MinSeedSize is the shortest seed GenerateParameters accepts.
const MinSeedSize = 16

const generatorInfo = "chaoscrypt:pendulum:v1"

// Parameter ranges used by GenerateParameters. Integer ranges are inclusive,
// float ranges are half open.
const (
	MinDuration = 40
	MaxDuration = 100
	MinSamples  = 20
	MaxSamples  = 500
	MinMass     = 1.0
	MaxMass     = 10.0
	MinLength   = 1.0
	MaxLength   = 4.0
	MinGravity  = 8.0
	MaxGravity  = 10.0
)

// randReader is the random source used for seed generation.
// It defaults to crypto/rand but can be overridden for testing.
var randReader io.Reader = rand.Reader

// NewSeed returns SeedSize bytes from the random source.
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(randReader, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return seed, nil
}

// GenerateParameters expands seed into a parameter set. The same seed always
// yields the same parameters.
func GenerateParameters(seed []byte) (Parameters, error) {
	if len(seed) < MinSeedSize {
		return Parameters{}, fmt.Errorf("%w: got %d bytes, want at least %d", ErrInvalidSeed, len(seed), MinSeedSize)
	}
	u := uniform{r: crypto.NewKeyStream(seed, nil, []byte(generatorInfo))}

	p := Parameters{
		Duration: float64(u.intn(MinDuration, MaxDuration)),
		Samples:  u.intn(MinSamples, MaxSamples),
		Theta1:   u.float(-math.Pi, math.Pi),
		Theta2:   u.float(-math.Pi, math.Pi),
		Omega1:   u.float(-5*math.Pi, 5*math.Pi),
		Omega2:   u.float(-5*math.Pi, 5*math.Pi),
		Mass1:    u.float(MinMass, MaxMass),
		Mass2:    u.float(MinMass, MaxMass),
		Length1:  u.float(MinLength, MaxLength),
		Length2:  u.float(MinLength, MaxLength),
		Gravity:  u.float(MinGravity, MaxGravity),
	}
	if u.err != nil {
		return Parameters{}, fmt.Errorf("failed to expand seed: %w", u.err)
	}
	return p, nil
}

// uniform draws values from a byte stream. The first read error sticks.
type uniform struct {
	r   io.Reader
	err error
}

func (u *uniform) unit() float64 {
	if u.err != nil {
		return 0
	}
	var b [8]byte
	if _, err := io.ReadFull(u.r, b[:]); err != nil {
		u.err = err
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

func (u *uniform) float(lo, hi float64) float64 {
	return lo + u.unit()*(hi-lo)
}

func (u *uniform) intn(lo, hi int) int {
	return lo + int(u.unit()*float64(hi-lo+1))
}
