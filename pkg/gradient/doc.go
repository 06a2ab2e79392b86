/*
Package gradient generates smooth colour sequences from sparse stops.

A stop anchors a colour at a fractional position in [0,1]. Generate produces one colour
per output cell, interpolating in HSL space. Hue travels the short way around the colour
wheel, so a gradient from 350° to 10° passes through red rather than cyan.

Before the first stop the colour is solid; after the last stop it is solid as well:

	g, err := gradient.GenerateRGB(40, []gradient.RGBStop{
		{Position: 0.2, Color: color.RGB8{R: 0xff}},
		{Position: 0.8, Color: color.RGB8{B: 0xff}},
	})
*/
package gradient
