package gm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/parityscope/pgame"
)

// Sentinel errors for malformed .gm input.
var (
	ErrMissingHeader   = errors.New("gm: missing \"parity\" header line")
	ErrMalformedHeader = errors.New("gm: malformed header line")
	ErrMalformedVertex = errors.New("gm: malformed vertex line")
	ErrUnknownOwner    = errors.New("gm: owner must be 0 or 1")
)

// Parse reads a PGSolver document from r and returns the game it
// describes.
func Parse(r io.Reader) (*pgame.Game, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, ErrMissingHeader
	}

	n, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	b, err := pgame.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("gm: %w", err)
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(scanner.Text()), ";"))
		if line == "" {
			continue
		}
		id, priority, owner, succ, err := parseVertex(line)
		if err != nil {
			return nil, fmt.Errorf("gm: line %d: %w", lineNo, err)
		}
		if err := b.AddVertex(id, priority, owner, succ); err != nil {
			return nil, fmt.Errorf("gm: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gm: %w", err)
	}

	return b.Build()
}

// parseHeader parses "parity N;".
func parseHeader(line string) (int, error) {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "parity" {
		return 0, ErrMissingHeader
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return n + 1, nil // PGSolver's N is the max id; dense count is N+1
}

// parseVertex parses "id priority owner succ1,succ2,...[,succk]" with the
// trailing semicolon already trimmed by the caller. A quoted name, when
// present, follows the successor list as further fields and is ignored.
func parseVertex(line string) (id, priority int, owner pgame.Owner, succ []int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, 0, 0, nil, ErrMalformedVertex
	}

	id, errID := strconv.Atoi(fields[0])
	priority, errP := strconv.Atoi(fields[1])
	ownerNum, errO := strconv.Atoi(fields[2])
	if errID != nil || errP != nil || errO != nil {
		return 0, 0, 0, nil, ErrMalformedVertex
	}
	switch ownerNum {
	case 0:
		owner = pgame.Even
	case 1:
		owner = pgame.Odd
	default:
		return 0, 0, 0, nil, ErrUnknownOwner
	}

	// The successor field is fields[3]; a trailing quoted name (if any)
	// is the remainder, already whitespace-separated from it.
	succFields := strings.Split(fields[3], ",")
	succ = make([]int, 0, len(succFields))
	for _, f := range succFields {
		t, convErr := strconv.Atoi(strings.TrimSpace(f))
		if convErr != nil {
			return 0, 0, 0, nil, ErrMalformedVertex
		}
		succ = append(succ, t)
	}

	return id, priority, owner, succ, nil
}
