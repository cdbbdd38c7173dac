package scenario

import (
	"fmt"

	"github.com/grindlemire/panelcheck/internal/panel"
)

// DockItem is one child of a dock fixture.
type DockItem struct {
	Side    string     `yaml:"side"`
	Size    int        `yaml:"size,omitempty"`
	Content panel.Size `yaml:"content"`
	Margin  int        `yaml:"margin,omitempty"`
}

// Dock is a docking panel fixture.
type Dock struct {
	Name          string     `yaml:"name"`
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	LastChildFill bool       `yaml:"lastChildFill"`
	Children      []DockItem `yaml:"children"`
}

// DockChildren converts the fixture into formula inputs.
func (d Dock) DockChildren() ([]panel.DockChild, error) {
	out := make([]panel.DockChild, len(d.Children))
	for i, c := range d.Children {
		side, err := panel.ParseDockSide(c.Side)
		if err != nil {
			return nil, fmt.Errorf("dock %s child %d: %w: %q", d.Name, i, ErrInvalidSide, c.Side)
		}
		out[i] = panel.DockChild{Side: side, Size: c.Size, Content: c.Content, Margin: c.Margin}
	}
	return out, nil
}

// Validate rejects dock fixtures that do not fit their container.
func (d Dock) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("dock: %w: empty name", ErrOutOfRange)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("dock %s: %w: container %dx%d", d.Name, ErrOutOfRange, d.Width, d.Height)
	}
	children, err := d.DockChildren()
	if err != nil {
		return err
	}

	// Every slot must be able to hold its own margins.
	w, h := d.Width, d.Height
	for i, c := range children {
		if c.Margin < 0 || c.Size < 0 || c.Content.Width < 0 || c.Content.Height < 0 {
			return fmt.Errorf("dock %s child %d: %w: negative size", d.Name, i, ErrOutOfRange)
		}
		if 2*c.Margin > w || 2*c.Margin > h {
			return fmt.Errorf("dock %s child %d: %w: margin %d in %dx%d", d.Name, i, ErrOutOfRange, c.Margin, w, h)
		}
		if c.Side.Horizontal() {
			w -= min(c.Extent(), w)
		} else {
			h -= min(c.Extent(), h)
		}
	}
	return nil
}

// DockMatrix generates one fixture for every combination of dock side,
// margin and sizing mode. Each fixture docks a single child in a
// width x height container followed by a filling child.
func DockMatrix(width, height int, margins []int) []Dock {
	var out []Dock
	for _, side := range []panel.DockSide{panel.Left, panel.Top, panel.Right, panel.Bottom} {
		for _, margin := range margins {
			for _, explicit := range []bool{true, false} {
				mode := "content"
				item := DockItem{Side: side.String(), Content: panel.Size{Width: width / 4, Height: height / 4}, Margin: margin}
				if explicit {
					mode = "explicit"
					item.Size = width / 5
					if !side.Horizontal() {
						item.Size = height / 5
					}
				}
				out = append(out, Dock{
					Name:          fmt.Sprintf("Dock/%s/margin%d/%s", side, margin, mode),
					Width:         width,
					Height:        height,
					LastChildFill: true,
					Children: []DockItem{
						item,
						{Side: panel.Left.String(), Margin: margin},
					},
				})
			}
		}
	}
	return out
}
