package prism_test

import (
	"fmt"
	"os"

	"github.com/aretw0/prism"
	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/output"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/style"
	"github.com/aretw0/prism/pkg/styler"
)

func ExampleString() {
	s := prism.String(
		output.WithForeground(style.Bold(), style.Color256(196)),
		output.TextNode("alert"),
		output.WithStyle(style.Style{}),
	)
	fmt.Printf("%q\n", s)
	// Output: "\x1b[1;38;5;196malert\x1b[m"
}

func ExamplePrint() {
	_ = prism.Print(os.Stdout, output.TextNode("plain"))
	// Output: plain
}

func Example_gradient() {
	s, err := styler.NewHorizontalForeground(3, []gradient.RGBStop{
		{Position: 0, Color: color.RGB8{B: 0x90}},
		{Position: 1, Color: color.RGB8{B: 0x40}},
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", render.ApplyLine(s, "abc", 0, render.WithNewline(false)))
	// Output: "\x1b[38;2;0;0;144ma\x1b[38;2;0;0;104mb\x1b[38;2;0;0;64mc\x1b[0m"
}
