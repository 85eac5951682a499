// Package pgame holds the parity-game data model: a dense, zero-indexed
// vertex set, each vertex owning a priority, an owner (Even or Odd), and a
// non-empty successor list. Games are built once under a Builder and then
// frozen, mirroring package lts's build-then-freeze discipline.
package pgame
