// Package aut parses the Aldebaran (.aut) textual LTS format into an
// lts.LTS. The format is a header line
//
//	des (init, numTransitions, numStates)
//
// followed by one "(s, "label", t)" triple per line. Parsing lives here,
// outside the solver packages: this package produces an lts.LTS and
// hands it to package muops, which never sees the text.
package aut
