package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/styler"
)

var bannerLines = []string{
	`  ____       _               `,
	` |  _ \ _ __(_)___ _ __ ___  `,
	` | |_) | '__| / __| '_ ' _ \ `,
	` |  __/| |  | \__ \ | | | | |`,
	` |_|   |_|  |_|___/_| |_| |_|`,
}

var bannerStops = []gradient.RGBStop{
	{Position: 0, Color: color.RGB8{R: 0x81, G: 0x8c, B: 0xf8}},
	{Position: 0.5, Color: color.RGB8{R: 0xe8, G: 0x79, B: 0xf9}},
	{Position: 1, Color: color.RGB8{R: 0xfb, G: 0x71, B: 0x85}},
}

// Banner returns the prism banner painted with a horizontal gradient.
func Banner() (string, error) {
	width := 0
	for _, l := range bannerLines {
		width = max(width, len(l))
	}
	s, err := styler.NewHorizontalForeground(width, bannerStops)
	if err != nil {
		return "", err
	}
	return render.ApplyLines(s, bannerLines), nil
}

// PrintBanner writes the banner surrounded by blank lines.
func PrintBanner(w io.Writer) error {
	banner, err := Banner()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s\n", banner)
	return err
}
