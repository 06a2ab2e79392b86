/*
Package color defines the colour values the rest of prism works with.

RGB8 is an 8-bit per channel colour as terminals consume it. HSL is the space gradients
are interpolated in. Both are immutable value types and conversions between them are
total: out-of-range inputs are normalized on construction instead of failing.

	c, _ := color.ParseHex("#ff8800")
	hsl := c.HSL()     // {32.0 1.0 0.5}
	back := hsl.RGB()  // equals c within 1/255 per channel
*/
package color
