/*
Package styler produces a Style for each character cell of a block of text.

A Styler answers StyleForPosition(x, y) for zero-based column x and row y. The gradient
stylers index their points by column (horizontal) or row (vertical) and saturate to the
edge colour outside the range. Join composes two stylers; the second wins conflicts.

	bg, _ := styler.NewHorizontalBackground(width, bgStops)
	fg, _ := styler.NewVerticalForeground(height, fgStops)
	s := styler.Join(bg, fg)
*/
package styler
