package panel

import "github.com/grindlemire/panelcheck/internal/layout"

// WrapOptions mirror the properties of a wrapping panel.
type WrapOptions struct {
	// ItemWidth and ItemHeight override every item's natural size when
	// non-zero.
	ItemWidth  int
	ItemHeight int
	// Stretch sizes items without an explicit height to their line's height.
	Stretch bool
}

// Wrap returns the expected rectangle of every item of a horizontal wrapping
// panel of the given width. An item starts a new line when it would overflow
// the current one, unless the line is empty.
func Wrap(width int, items []Size, opts WrapOptions) []layout.Rect {
	out := make([]layout.Rect, len(items))
	sizes := make([]Size, len(items))
	for i, it := range items {
		sizes[i] = it
		if opts.ItemWidth > 0 {
			sizes[i].Width = opts.ItemWidth
		}
		if opts.ItemHeight > 0 {
			sizes[i].Height = opts.ItemHeight
		}
	}

	y := 0
	for start := 0; start < len(sizes); {
		end, x, lineHeight := start, 0, 0
		for end < len(sizes) {
			w := sizes[end].Width
			if end > start && x+w > width {
				break
			}
			x += w
			lineHeight = max(lineHeight, sizes[end].Height)
			end++
		}

		x = 0
		for i := start; i < end; i++ {
			h := sizes[i].Height
			if opts.Stretch && opts.ItemHeight == 0 {
				h = lineHeight
			}
			out[i] = layout.NewRect(x, y, sizes[i].Width, h)
			x += sizes[i].Width
		}
		y += lineHeight
		start = end
	}
	return out
}
