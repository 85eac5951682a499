package aut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/parityscope/lts"
)

// Sentinel errors for malformed .aut input. The parser, not the solver,
// is where these surface.
var (
	ErrMissingHeader   = errors.New("aut: missing \"des\" header line")
	ErrMalformedHeader = errors.New("aut: malformed header line")
	ErrMalformedEdge   = errors.New("aut: malformed transition line")
)

// Parse reads an Aldebaran (.aut) document from r and returns the LTS it
// describes.
func Parse(r io.Reader) (*lts.LTS, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, ErrMissingHeader
	}

	init, _, numStates, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	b, err := lts.NewBuilder(numStates, init)
	if err != nil {
		return nil, fmt.Errorf("aut: %w", err)
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, label, t, err := parseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("aut: line %d: %w", lineNo, err)
		}
		if err := b.AddTransition(s, label, t); err != nil {
			return nil, fmt.Errorf("aut: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("aut: %w", err)
	}

	return b.Build()
}

// parseHeader parses "des (init, numTransitions, numStates)".
func parseHeader(line string) (init, numTransitions, numStates int, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "des") {
		return 0, 0, 0, ErrMissingHeader
	}
	open := strings.Index(line, "(")
	closeParen := strings.LastIndex(line, ")")
	if open < 0 || closeParen < open {
		return 0, 0, 0, ErrMalformedHeader
	}
	fields := strings.Split(line[open+1:closeParen], ",")
	if len(fields) != 3 {
		return 0, 0, 0, ErrMalformedHeader
	}

	nums := make([]int, 3)
	for i, f := range fields {
		n, convErr := strconv.Atoi(strings.TrimSpace(f))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, convErr)
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}

// parseEdge parses "(s, \"label\", t)".
func parseEdge(line string) (s int, label string, t int, err error) {
	open := strings.Index(line, "(")
	closeParen := strings.LastIndex(line, ")")
	if open < 0 || closeParen < open {
		return 0, "", 0, ErrMalformedEdge
	}
	body := line[open+1 : closeParen]

	firstQuote := strings.Index(body, "\"")
	lastQuote := strings.LastIndex(body, "\"")
	if firstQuote < 0 || lastQuote <= firstQuote {
		return 0, "", 0, ErrMalformedEdge
	}

	sField := strings.TrimSpace(strings.TrimRight(body[:firstQuote], ","))
	tField := strings.TrimSpace(strings.TrimLeft(body[lastQuote+1:], ","))
	label = body[firstQuote+1 : lastQuote]

	sVal, errS := strconv.Atoi(sField)
	tVal, errT := strconv.Atoi(tField)
	if errS != nil || errT != nil || label == "" {
		return 0, "", 0, ErrMalformedEdge
	}

	return sVal, label, tVal, nil
}
