package liftstrategy

// focusEntry is one (vertex, credit) pair on the focus list.
type focusEntry struct {
	id     int
	credit int
}

// FocusList is the two-phase strategy: a scan phase sweeping every id,
// building a focus list from successful lifts, and a focus phase
// round-robining that list until it drains or a budget of lifts is
// spent. The scan hands over to the focus phase as soon as the list
// reaches maxSize, or at the end of the sweep if anything was collected.
// The global pass boundary is a complete scan phase that lifts nothing.
type FocusList struct {
	v           int
	maxSize     int
	maxAttempts int

	inFocus       bool
	scanPos       int
	scanSucceeded bool

	focus    []focusEntry
	focusPos int
	attempts int
}

// NewFocusList builds the strategy for v vertices with the given focus-
// list size cap and per-focus-phase lift budget.
func NewFocusList(v, maxSize, maxAttempts int) *FocusList {
	return &FocusList{v: v, maxSize: maxSize, maxAttempts: maxAttempts}
}

// Next yields the next id to lift, switching phases internally. ok is
// false exactly once per global pass boundary: a complete scan-phase
// sweep that produced zero successful lifts.
func (s *FocusList) Next() (int, bool) {
	for {
		if s.inFocus {
			if len(s.focus) == 0 || s.attempts >= s.maxAttempts {
				s.inFocus = false
				s.focusPos = 0
				s.attempts = 0
				continue
			}
			if s.focusPos >= len(s.focus) {
				s.focusPos = 0
			}
			id := s.focus[s.focusPos].id
			s.attempts++
			return id, true
		}

		// scan phase
		if s.scanPos == s.v {
			done := !s.scanSucceeded
			s.scanPos = 0
			s.scanSucceeded = false
			if len(s.focus) > 0 {
				s.inFocus = true
				s.focusPos = 0
				s.attempts = 0
				continue
			}
			if done {
				return 0, false
			}
			continue
		}
		id := s.scanPos
		s.scanPos++
		return id, true
	}
}

// NotifyLifted updates scan/focus bookkeeping for the id the loop just
// lifted (always the id the last Next returned; the two alternate 1:1).
func (s *FocusList) NotifyLifted(v int, updated bool) {
	if !s.inFocus {
		if updated {
			s.scanSucceeded = true
			s.focus = append(s.focus, focusEntry{id: v, credit: 2})
			if len(s.focus) >= s.maxSize {
				s.inFocus = true
				s.focusPos = 0
				s.attempts = 0
			}
		}
		return
	}

	idx := s.focusPos
	if updated {
		s.focus[idx].credit += 2
		s.focusPos++
		return
	}

	if s.focus[idx].credit > 0 {
		s.focus[idx].credit /= 2
		s.focusPos++
		return
	}

	// drop: remove idx, do not advance focusPos (next entry shifts into it)
	s.focus = append(s.focus[:idx], s.focus[idx+1:]...)
}
