// Package format provides the append-only text sink used by all code
// generation passes.
//
// Writer is deliberately dumb: it tracks indentation and line starts, and
// offers Join for comma-separated lists. It never inspects what it writes;
// backends own the shape of the emitted text.
package format
