// Package gm parses the PGSolver textual parity-game format (.gm) into a
// pgame.Game: a header line "parity N;" followed by lines
// "id priority owner succ1,succ2,...[,succk] [\"name\"];". Vertex names
// are accepted but discarded — pgame.Game indexes purely by dense id.
package gm
