/*
Package style models text attributes and the rules for combining them.

A Style holds at most one background and an ordered list of foreground attributes with at
most one attribute per category (bold, color, italic, underline). Merging a style into
another replaces only the categories the incoming style supplies:

	s := style.New(style.Color256(10), style.Italic(), style.Underline(), style.Bold())
	s.AddForeground(style.ColorBasic(color.Green))
	// s.Foreground == [italic, underline, bold, basic green]

Surviving attributes keep their relative order and incoming ones are appended in the fixed
order bold, color, italic, underline. The order is visible in the emitted escape codes.

Backgrounds have three states: unset (the zero value), explicitly cleared (NoBackground)
and a colour. How an unset incoming background is merged is a BackgroundPolicy.
*/
package style
