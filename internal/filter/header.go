package filter

import "strconv"

// validTimeControls is the fixed admissible set from SPEC_FULL.md §4.1.
var validTimeControls = map[string]bool{
	"180+0": true, "300+0": true, "600+0": true, "180+2": true,
	"120+1": true, "300+3": true, "600+5": true,
}

// Header tracks per-game header state and decides admissibility once the
// move list starts.
type Header struct {
	timeControl string
	whiteElo    int
	blackElo    int
	abandoned   bool
}

// NewHeader returns a Header ready for its first game.
func NewHeader() *Header {
	h := &Header{}
	h.StartPGN()
	return h
}

// StartPGN resets per-game header state.
func (h *Header) StartPGN() {
	h.timeControl = ""
	h.whiteElo = -1
	h.blackElo = -1
	h.abandoned = false
}

// Header records one PGN tag, ignoring any it doesn't care about.
func (h *Header) Header(key, value string) {
	switch key {
	case "TimeControl":
		h.timeControl = value
	case "WhiteElo":
		if elo, ok := parseElo(value); ok {
			h.whiteElo = elo
		}
	case "BlackElo":
		if elo, ok := parseElo(value); ok {
			h.blackElo = elo
		}
	case "Termination":
		if value == "Abandoned" {
			h.abandoned = true
		}
	}
}

// parseElo reports the Elo value and whether the field carried one: an
// empty or "-" value is a legitimate "no rating" sentinel, distinct from an
// unparseable value, both of which leave the Elo at its -1 sentinel.
func parseElo(value string) (int, bool) {
	if value == "" || value == "-" {
		return -1, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return -1, false
	}
	return n, true
}

// ShouldSkip reports whether the game fails the header admissibility rule.
func (h *Header) ShouldSkip() bool {
	if h.abandoned || h.whiteElo < 0 || h.blackElo < 0 {
		return true
	}
	diff := h.whiteElo - h.blackElo
	if diff < 0 {
		diff = -diff
	}
	if diff > 200 {
		return true
	}
	return !validTimeControls[h.timeControl]
}
