// Package demo is a small provider stack built with collate, served by
// `collate serve` and printed by `collate render`.
//
// The stack nests theme, locale and user providers around three contexts
// A, B and C. The A layer reads the ambient B value while it renders, so
// its value depends on where it sits in the stack.
package demo
