package weights

import (
	"fmt"
	"strings"

	"github.com/san-kum/balancescale/internal/dynamo"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

func (s Side) Valid() bool {
	return s == Left || s == Right
}

// Sign is -1 for the left arm and +1 for the right arm.
func (s Side) Sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", dynamo.ErrInvalidSide, name)
}

func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", dynamo.ErrInvalidSide, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
