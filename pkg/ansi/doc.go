/*
Package ansi is the escape codec prism renders through.

It knows a closed set of SGR (Select Graphic Rendition) codes and turns ordered lists of
them into the literal control sequences a terminal expects. Parameter values come from
termenv so the bytes match what the rest of the charm/muesli ecosystem emits.

A rendered document is a flat list of Commands: literal text or an SGR. Join turns the
list into a string.
*/
package ansi
