package config

import (
	"encoding/json"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple in 0..1. In JSON it is either a hex string ("#ffcc00")
// or a three-element array.
type Color [3]float32

// ParseColor parses a "#rrggbb" or "#rgb" string.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("bad colour %q: %w", hex, err)
	}
	return Color{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := ParseColor(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var rgb [3]float32
	if err := json.Unmarshal(data, &rgb); err != nil {
		return fmt.Errorf("colour must be a hex string or [r, g, b]: %w", err)
	}
	*c = rgb
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}
