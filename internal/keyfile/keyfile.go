// Package keyfile persists pendulum parameters as plain text, one number per
// line in the order duration, samples, theta1, omega1, theta2, omega2,
// mass1, mass2, length1, length2, gravity.
package keyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vihar-202001110/CryptographyProject/internal/pendulum"
)

// FieldCount is the number of lines in a key file.
const FieldCount = 11

// ErrMalformed is returned when a key file does not hold exactly
// FieldCount numbers.
var ErrMalformed = errors.New("malformed key file")

func fields(p *pendulum.Parameters) []*float64 {
	return []*float64{
		&p.Duration, nil, &p.Theta1, &p.Omega1, &p.Theta2, &p.Omega2,
		&p.Mass1, &p.Mass2, &p.Length1, &p.Length2, &p.Gravity,
	}
}

// Write encodes p. Lines are separated by a newline with none after the
// last.
func Write(w io.Writer, p pendulum.Parameters) error {
	lines := make([]string, 0, FieldCount)
	for i, f := range fields(&p) {
		if i == 1 {
			lines = append(lines, strconv.Itoa(p.Samples))
			continue
		}
		lines = append(lines, strconv.FormatFloat(*f, 'g', -1, 64))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// Read decodes a key file. Blank lines and surrounding whitespace are
// ignored.
func Read(r io.Reader) (pendulum.Parameters, error) {
	var values []float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return pendulum.Parameters{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return pendulum.Parameters{}, fmt.Errorf("failed to read key file: %w", err)
	}
	if len(values) != FieldCount {
		return pendulum.Parameters{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformed, len(values), FieldCount)
	}

	var p pendulum.Parameters
	for i, f := range fields(&p) {
		if i == 1 {
			n := values[i]
			if n != math.Trunc(n) || n < 0 || n > math.MaxInt32 {
				return pendulum.Parameters{}, fmt.Errorf("%w: sample count %v is not a whole number", ErrMalformed, n)
			}
			p.Samples = int(n)
			continue
		}
		*f = values[i]
	}
	return p, nil
}

// Save writes p to path, readable only by the owner.
func Save(path string, p pendulum.Parameters) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads the key file at path.
func Load(path string) (pendulum.Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return pendulum.Parameters{}, fmt.Errorf("failed to open key file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
