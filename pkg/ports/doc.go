/*
Package ports defines the driven ports (interfaces) used by prism's outer surfaces.

The rendering core (style, gradient, render) is pure and has no ports. The HTTP
adapter and CLI reach external systems only through the interfaces declared here.

# Key Interfaces

  - RenderCache: Stores rendered ANSI output keyed by a digest of the request.
*/
package ports
