/*
Package observability exposes prism's render activity as Prometheus metrics.

Metrics plugs into the renderer through render.Hooks, so library callers opt in by
passing render.WithHooks(m.Hooks()) and the HTTP service wires it automatically.
*/
package observability
