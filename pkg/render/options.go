package render

// Kind names the operation that produced an Event.
type Kind string

const (
	KindLine         Kind = "line"
	KindLines        Kind = "lines"
	KindDualGradient Kind = "dual_gradient"
	KindStyle        Kind = "style" // a whole string wrapped in one style, as Style.Apply does
)

// Event describes one completed render call.
type Event struct {
	Kind  Kind
	Cells int
	Err   error
}

// Hooks receive render events. Nil fields are skipped.
type Hooks struct {
	OnRender func(Event)
}

func (h Hooks) emit(e Event) {
	if h.OnRender != nil {
		h.OnRender(e)
	}
}

type config struct {
	newline  bool
	reset    bool
	coalesce bool
	hooks    Hooks
}

func newConfig(opts []Option) config {
	cfg := config{newline: true, reset: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a render call.
type Option func(*config)

// WithNewline controls whether a newline follows each line. Default true.
// ApplyDualGradient ignores it.
func WithNewline(enabled bool) Option {
	return func(c *config) {
		c.newline = enabled
	}
}

// WithReset controls whether a full reset follows each line. Default true.
func WithReset(enabled bool) Option {
	return func(c *config) {
		c.reset = enabled
	}
}

// WithCoalesce drops SGR sequences that repeat the previous one. Default false.
// This changes the byte output.
func WithCoalesce(enabled bool) Option {
	return func(c *config) {
		c.coalesce = enabled
	}
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}
