/*
Package preset reads named styles and gradients from YAML.

A preset file looks like this:

	styles:
	  title:
	    foreground: [bold, "#ff5f6d"]
	    background: "basic:blue"
	gradients:
	  sunset:
	    stops:
	      - {at: 0.0, color: "#ff5f6d"}
	      - {at: 1.0, color: "#ffc371"}

Foreground tokens are bold, italic, underline, "#rrggbb", "256:N", "basic:NAME" and
"bright:NAME". Background accepts the colour tokens and "none".

Presets are read-only configuration. Nothing here writes styles anywhere.
*/
package preset
