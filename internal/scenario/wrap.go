package scenario

import (
	"fmt"

	"github.com/grindlemire/panelcheck/internal/panel"
)

// Wrap is a wrapping panel fixture.
type Wrap struct {
	Name       string       `yaml:"name"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	ItemWidth  int          `yaml:"itemWidth,omitempty"`
	ItemHeight int          `yaml:"itemHeight,omitempty"`
	Stretch    bool         `yaml:"stretch,omitempty"`
	Items      []panel.Size `yaml:"items"`
}

// Options returns the formula options of the fixture.
func (w Wrap) Options() panel.WrapOptions {
	return panel.WrapOptions{ItemWidth: w.ItemWidth, ItemHeight: w.ItemHeight, Stretch: w.Stretch}
}

func (w Wrap) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("wrap: %w: empty name", ErrOutOfRange)
	}
	if w.Width <= 0 || w.Height < 0 || w.ItemWidth < 0 || w.ItemHeight < 0 {
		return fmt.Errorf("wrap %s: %w: container %dx%d", w.Name, ErrOutOfRange, w.Width, w.Height)
	}
	for i, it := range w.Items {
		if it.Width < 0 || it.Height < 0 {
			return fmt.Errorf("wrap %s item %d: %w: negative size", w.Name, i, ErrOutOfRange)
		}
	}
	return nil
}
