package scenario

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scale is a display scale factor applied to every pixel quantity of a
// scenario. The zero value means 1.
type Scale float64

// ParseScale accepts a plain factor ("1.25") or a percentage ("125%").
func ParseScale(s string) (float64, error) {
	s = strings.TrimSpace(s)
	div := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		div = 100
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidScale, s)
	}
	return f / div, nil
}

// Factor returns the multiplier, treating zero as 1.
func (s Scale) Factor() float64 {
	if s == 0 {
		return 1
	}
	return float64(s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scale) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	f, err := ParseScale(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = Scale(f)
	return nil
}

// px scales a pixel quantity and rounds it to a whole pixel.
func (s Scale) px(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v * s.Factor())
}
