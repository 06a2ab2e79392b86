package http

// Stop is a gradient stop on the wire.
type Stop struct {
	At    float64 `json:"at"`
	Color string  `json:"color"`
}

// GradientRequest is the body of POST /v1/gradient.
//
// Each layer comes from a preset name or an inline stop list; the inline list wins when
// both are given. Length defaults to the number of characters in Text.
type GradientRequest struct {
	Text             string `json:"text"`
	Length           int    `json:"length,omitempty"`
	Preset           string `json:"preset,omitempty"`
	Foreground       []Stop `json:"foreground,omitempty"`
	BackgroundPreset string `json:"background_preset,omitempty"`
	Background       []Stop `json:"background,omitempty"`
	LeadingFiller    string `json:"leading_filler,omitempty"`
	TrailingFiller   string `json:"trailing_filler,omitempty"`
	Reset            *bool  `json:"reset,omitempty"`
	Coalesce         bool   `json:"coalesce,omitempty"`
}

// StyleRequest is the body of POST /v1/style.
//
// Inline attributes are merged over the preset, so they override it per category.
type StyleRequest struct {
	Text       string   `json:"text"`
	Preset     string   `json:"preset,omitempty"`
	Foreground []string `json:"foreground,omitempty"`
	Background string   `json:"background,omitempty"`
}

// RenderResponse carries rendered ANSI output.
type RenderResponse struct {
	Output string `json:"output"`
	Cached bool   `json:"cached"`
}

// PresetsResponse lists the available presets.
type PresetsResponse struct {
	Styles    []string `json:"styles"`
	Gradients []string `json:"gradients"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
