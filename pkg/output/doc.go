/*
Package output composes styled terminal output as a tree of nodes.

Nodes are text, foreground attributes, a background, a full style, nothing, or a group of
other nodes. Flatten walks the tree depth-first in child order and returns the render
commands; no attributes are merged between nodes.

Nodes can be built with the constructors or with the fluent Builder:

	out := output.New().
		Foreground(style.ColorRGB(color.RGB8{R: 0x40, G: 0xd0, B: 0x90})).
		Foreground(style.Bold()).
		Text("Builders, too").
		Build()

	fmt.Println(output.Render(out))
*/
package output
