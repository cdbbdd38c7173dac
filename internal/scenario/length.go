package scenario

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LengthKind says how a grid track is sized.
type LengthKind uint8

const (
	LengthAuto LengthKind = iota
	LengthPixel
	LengthStar
)

// Length is a parsed grid track length.
type Length struct {
	Kind LengthKind
	// Value is the pixel size or the star weight.
	Value float64
}

// ParseLength parses a track length:
//
//	auto     sized to content
//	120      fixed pixels, "120px" is accepted too
//	*        star weight 1
//	2.5*     star weight 2.5
//	inf*     infinite star weight
//	0.4max*  star weight 0.4 x MaxFloat64
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "auto":
		return Length{Kind: LengthAuto}, nil
	case s == "*":
		return Length{Kind: LengthStar, Value: 1}, nil
	case s == "inf*":
		return Length{Kind: LengthStar, Value: math.Inf(1)}, nil
	case strings.HasSuffix(s, "max*"):
		f, err := parseAmount(strings.TrimSuffix(s, "max*"))
		if err != nil || f > 1 {
			return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
		}
		return Length{Kind: LengthStar, Value: f * math.MaxFloat64}, nil
	case strings.HasSuffix(s, "*"):
		f, err := parseAmount(strings.TrimSuffix(s, "*"))
		if err != nil {
			return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
		}
		return Length{Kind: LengthStar, Value: f}, nil
	default:
		f, err := parseAmount(strings.TrimSuffix(s, "px"))
		if err != nil {
			return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
		}
		return Length{Kind: LengthPixel, Value: f}, nil
	}
}

func parseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %v out of range", f)
	}
	return f, nil
}

func (l Length) String() string {
	switch l.Kind {
	case LengthPixel:
		return strconv.FormatFloat(l.Value, 'g', -1, 64)
	case LengthStar:
		switch {
		case math.IsInf(l.Value, 1):
			return "inf*"
		case l.Value > math.MaxFloat32:
			return strconv.FormatFloat(l.Value/math.MaxFloat64, 'g', -1, 64) + "max*"
		case l.Value == 1:
			return "*"
		}
		return strconv.FormatFloat(l.Value, 'g', -1, 64) + "*"
	default:
		return "auto"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLength(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*l = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l Length) MarshalYAML() (any, error) {
	return l.String(), nil
}
