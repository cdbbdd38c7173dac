package layout

import "math"

// flexItem holds intermediate calculation state for a child.
// Sizes are outer sizes: margin is part of the slot.
type flexItem struct {
	node   Layoutable
	base   float64 // hypothetical main size before flexing
	min    float64
	max    float64
	grow   float64
	shrink float64

	target float64
	frozen bool

	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
}

// newFlexItems computes base sizes, bounds and flex factors for children
// laid out along a main axis of the given size.
func newFlexItems(children []Layoutable, isRow bool, mainSize int) []flexItem {
	items := make([]flexItem, len(children))
	for i, child := range children {
		style := child.LayoutStyle()
		iw, ih := child.IntrinsicSize()

		mainValue, minValue, maxValue := style.Width, style.MinWidth, style.MaxWidth
		intrinsic, margin := iw, style.Margin.Horizontal()
		if !isRow {
			mainValue, minValue, maxValue = style.Height, style.MinHeight, style.MaxHeight
			intrinsic, margin = ih, style.Margin.Vertical()
		}

		minMain := minValue.Resolve(mainSize, 0)
		if style.ContentMin {
			minMain = max(minMain, intrinsic)
		}
		maxMain := math.Inf(1)
		if !maxValue.IsAuto() {
			maxMain = float64(max(maxValue.Resolve(mainSize, 0), minMain))
		}

		items[i] = flexItem{
			node:   child,
			base:   float64(mainValue.Resolve(mainSize, intrinsic) + margin),
			min:    float64(minMain + margin),
			max:    maxMain + float64(margin),
			grow:   math.Max(0, style.FlexGrow),
			shrink: math.Max(0, style.FlexShrink),
		}
	}
	return items
}

// layoutChildren arranges the children of a node within the given content rect.
func layoutChildren(node Layoutable, contentRect Rect) {
	children := node.LayoutChildren()
	style := node.LayoutStyle()
	isRow := style.Direction == Row

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	if style.Wrap {
		layoutLines(children, style, contentRect, isRow, mainSize)
		return
	}

	items := newFlexItems(children, isRow, mainSize)
	totalGap := style.Gap * max(0, len(items)-1)
	resolveFlexibleLengths(items, float64(mainSize-totalGap))

	targets := make([]float64, len(items))
	for i := range items {
		targets[i] = items[i].target
	}
	sizes := roundSizes(targets)

	offset := 0
	for i := range items {
		items[i].mainSize = sizes[i]
		items[i].mainPos = offset
		offset += sizes[i] + style.Gap
		items[i].crossSize, items[i].crossPos = crossSlot(style.AlignItems, items[i].node.LayoutStyle(), isRow, crossSize)
	}

	placeItems(items, contentRect, isRow)
}

// resolveFlexibleLengths distributes space among items. Items whose share
// violates their min or max are frozen at the bound and the rest of the
// space is handed out again, until no item is in violation.
func resolveFlexibleLengths(items []flexItem, space float64) {
	used := 0.0
	for i := range items {
		used += items[i].base
	}
	free := space - used
	growing := free > 0

	factor := func(it *flexItem) float64 {
		if growing {
			return it.grow
		}
		return it.shrink * it.base
	}

	for i := range items {
		it := &items[i]
		it.target = it.base
		it.frozen = free == 0 || factor(it) == 0
		if it.frozen {
			it.target = clampFloat(it.base, it.min, it.max)
		}
	}

	// Every pass freezes at least one item, so len(items) passes suffice.
	for range len(items) + 1 {
		remaining := space
		var open []int
		for i := range items {
			if items[i].frozen {
				remaining -= items[i].target
				continue
			}
			remaining -= items[i].base
			open = append(open, i)
		}
		if len(open) == 0 {
			return
		}

		raw := make([]float64, len(open))
		for j, i := range open {
			raw[j] = factor(&items[i])
		}
		ratios := normalizeWeights(raw)

		clamped := make([]float64, len(open))
		violation := 0.0
		for j, i := range open {
			it := &items[i]
			it.target = it.base + remaining*ratios[j]
			clamped[j] = clampFloat(it.target, it.min, it.max)
			violation += clamped[j] - it.target
		}

		for j, i := range open {
			it := &items[i]
			switch {
			case math.Abs(violation) < 1e-9:
				it.frozen = true
			case violation > 0 && clamped[j] > it.target:
				it.frozen = true
			case violation < 0 && clamped[j] < it.target:
				it.frozen = true
			}
			if it.frozen {
				it.target = clamped[j]
			}
		}
	}
}

// normalizeWeights scales weights so they sum to one. Weights are divided
// by the largest before summing so values near MaxFloat64 cannot overflow.
// If any weight is +Inf, the infinite weights share everything equally.
func normalizeWeights(raw []float64) []float64 {
	out := make([]float64, len(raw))

	hasInf := false
	largest := 0.0
	for _, w := range raw {
		if math.IsInf(w, 1) {
			hasInf = true
		} else if w > largest {
			largest = w
		}
	}

	for i, w := range raw {
		switch {
		case hasInf && math.IsInf(w, 1):
			out[i] = 1
		case !hasInf && largest > 0 && w > 0:
			out[i] = w / largest
		}
	}

	sum := 0.0
	for _, w := range out {
		sum += w
	}
	if sum == 0 {
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// roundSizes rounds fractional sizes so that the rounded sizes always sum
// to the rounded total. The rounding error of each item is carried into
// the next one; integer sizes come out unchanged.
func roundSizes(targets []float64) []int {
	sizes := make([]int, len(targets))
	acc := 0.0
	prev := 0
	for i, t := range targets {
		acc += t
		pos := int(math.Floor(acc + 0.5))
		sizes[i] = pos - prev
		prev = pos
	}
	return sizes
}

// layoutLines arranges children of a wrapping container. Items keep their
// own main size and break onto a new line when the current one would
// overflow; each line is as tall as its tallest item.
func layoutLines(children []Layoutable, style Style, contentRect Rect, isRow bool, mainSize int) {
	items := newFlexItems(children, isRow, mainSize)

	crossOuter := make([]int, len(items))
	for i := range items {
		child := items[i].node.LayoutStyle()
		w, h := items[i].node.IntrinsicSize()
		crossValue, intrinsic, margin := child.Height, h, child.Margin.Vertical()
		if !isRow {
			crossValue, intrinsic, margin = child.Width, w, child.Margin.Horizontal()
		}
		crossOuter[i] = crossValue.Resolve(intrinsic, intrinsic) + margin
		items[i].mainSize = int(clampFloat(items[i].base, items[i].min, items[i].max))
	}

	lineStart := 0
	lineOffset := 0
	for lineStart < len(items) {
		lineEnd := lineStart
		used := 0
		for lineEnd < len(items) {
			next := items[lineEnd].mainSize
			if lineEnd > lineStart {
				next += style.Gap
			}
			if lineEnd > lineStart && used+next > mainSize {
				break
			}
			used += next
			lineEnd++
		}

		lineCross := 0
		for i := lineStart; i < lineEnd; i++ {
			lineCross = max(lineCross, crossOuter[i])
		}

		offset := 0
		for i := lineStart; i < lineEnd; i++ {
			child := items[i].node.LayoutStyle()
			crossValue := child.Height
			if !isRow {
				crossValue = child.Width
			}
			items[i].mainPos = offset
			offset += items[i].mainSize + style.Gap

			items[i].crossSize = crossOuter[i]
			if style.AlignItems == AlignStretch && crossValue.IsAuto() {
				items[i].crossSize = lineCross
			}
			items[i].crossPos = lineOffset + calculateAlignOffset(style.AlignItems, lineCross, items[i].crossSize)
		}

		lineOffset += lineCross
		lineStart = lineEnd
	}

	placeItems(items, contentRect, isRow)
}

// crossSlot returns the cross-axis slot size and offset for a child.
func crossSlot(align Align, child Style, isRow bool, crossSize int) (int, int) {
	crossValue, crossMargin := child.Height, child.Margin.Vertical()
	if !isRow {
		crossValue, crossMargin = child.Width, child.Margin.Horizontal()
	}

	if align == AlignStretch && crossValue.IsAuto() {
		return crossSize, 0
	}

	available := crossSize - crossMargin
	content := available
	if !crossValue.IsAuto() {
		content = crossValue.Resolve(available, available)
	}
	size := content + crossMargin
	return size, calculateAlignOffset(align, crossSize, size)
}

// placeItems converts item slots to rects and recurses into each child.
func placeItems(items []flexItem, contentRect Rect, isRow bool) {
	for i := range items {
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + items[i].mainPos,
				Y:      contentRect.Y + items[i].crossPos,
				Width:  items[i].mainSize,
				Height: items[i].crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + items[i].crossPos,
				Y:      contentRect.Y + items[i].mainPos,
				Width:  items[i].crossSize,
				Height: items[i].mainSize,
			}
		}

		// The child receives its border box and does not re-apply margin.
		calculateNode(items[i].node, slot.Inset(items[i].node.LayoutStyle().Margin), mainAxis(isRow))
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
