/*
Package render applies stylers and gradients to text and produces escape-coded strings.

Each character gets its own SGR, with no coalescing, so output is deterministic and matches
the reference renderer byte for byte. WithCoalesce enables a minimal-output pass that drops
repeated codes; it changes the bytes but not what the terminal shows.

Writing to a stream is a separate step (Fprint, WriteLines) layered on top of a fully
computed string.
*/
package render
