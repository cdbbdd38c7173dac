package layout

import "math"

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout field populated.
// Clean subtrees whose border box did not move are skipped.
//
// availableWidth and availableHeight specify the root constraint. Either may
// be Unconstrained, in which case an Auto root is sized to its content.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	// The root resolves its own width/height against the available space;
	// children receive theirs from the parent's flex pass.
	style := root.LayoutStyle()
	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(availableHeight, availableHeight)
	if width == Unconstrained {
		width = measureWidth(root)
	}
	if height == Unconstrained {
		_, height = root.IntrinsicSize()
	}

	calculateNode(root, NewRect(0, 0, width, height), 0)
}

// resolvedAxes marks the dimensions a parent's flex pass already sized,
// content minimums and declared bounds included.
type resolvedAxes uint8

const (
	resolvedWidth resolvedAxes = 1 << iota
	resolvedHeight
)

func mainAxis(isRow bool) resolvedAxes {
	if isRow {
		return resolvedWidth
	}
	return resolvedHeight
}

// calculateNode computes the layout for a single node within the available space.
// The available rect represents the border box space allocated by the parent
// (after the parent has already applied this node's margin).
func calculateNode(node Layoutable, available Rect, resolved resolvedAxes) {
	style := node.LayoutStyle()
	borderBox := computeBorderBox(style, available, resolved)

	// Dirty propagates up, so a clean node that keeps its box keeps its subtree.
	if !node.IsDirty() && node.GetLayout().Rect == borderBox {
		return
	}

	contentRect := borderBox.Inset(style.Padding)
	if len(node.LayoutChildren()) > 0 {
		layoutChildren(node, contentRect)
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
	node.SetDirty(false)
}

// computeBorderBox applies the node's own min/max constraints to the space
// the parent allocated. Width/Height were already consumed by the parent's
// flex pass to size the slot. Axes in resolved keep the slot size.
func computeBorderBox(style Style, available Rect, resolved resolvedAxes) Rect {
	width := available.Width
	height := available.Height

	if resolved&resolvedWidth == 0 {
		minWidth := style.MinWidth.Resolve(available.Width, 0)
		maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
		width = clamp(width, minWidth, maxWidth)
	}
	if resolved&resolvedHeight == 0 {
		minHeight := style.MinHeight.Resolve(available.Height, 0)
		maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
		height = clamp(height, minHeight, maxHeight)
	}

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

// measureWidth returns the width a row needs when nothing bounds it:
// every flexible item gets the same size per unit of weight, the smallest
// unit that satisfies all of their minimums.
func measureWidth(node Layoutable) int {
	style := node.LayoutStyle()
	children := node.LayoutChildren()
	if len(children) == 0 || style.Direction != Row || style.Wrap {
		w, _ := node.IntrinsicSize()
		return w
	}

	items := newFlexItems(children, true, Unconstrained)
	raw := make([]float64, len(items))
	for i := range items {
		raw[i] = items[i].grow
	}
	weights := normalizeWeights(raw)

	unit := 0.0
	for i, it := range items {
		if weights[i] > 0 {
			unit = math.Max(unit, (it.min-it.base)/weights[i])
		}
	}

	total := float64(style.Padding.Horizontal() + style.Gap*(len(items)-1))
	for i, it := range items {
		total += clampFloat(it.base+unit*weights[i], it.min, it.max)
	}
	return int(math.Ceil(total - 1e-9))
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// clampFloat is clamp for fractional sizes; a max below min is ignored.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
