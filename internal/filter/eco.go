package filter

// ECO tracks the current game's ECO tag and admits it if it falls in a
// fixed, precomputed set of three-character codes.
type ECO struct {
	valid map[string]bool
	code  string
}

// NewECO builds an ECO filter admitting the inclusive range [start, end]
// (both "[A-Z][0-9][0-9]" codes), generated by GenCodes.
func NewECO(start, end string) *ECO {
	codes := GenCodes(start, end)
	valid := make(map[string]bool, len(codes))
	for _, c := range codes {
		valid[c] = true
	}
	return &ECO{valid: valid}
}

// StartPGN resets the tracked ECO code for the next game.
func (e *ECO) StartPGN() { e.code = "" }

// Header records the ECO tag if this is it.
func (e *ECO) Header(key, value string) {
	if key == "ECO" {
		e.code = value
	}
}

// ShouldSkip reports whether the game's ECO code falls outside the
// admissible range.
func (e *ECO) ShouldSkip() bool {
	return !e.valid[e.code]
}

// GenCodes enumerates every three-character ECO code from start to end
// inclusive, by lexicographic succession over the alphabet
// [A-Z][0-9][0-9]: increment the last digit, carrying into the middle digit
// past '9', and into the letter past the middle digit's '9'.
func GenCodes(start, end string) []string {
	var codes []string
	code := []byte(start)
	for string(code) != end {
		codes = append(codes, string(code))
		code[2]++
		if code[2] > '9' {
			code[2] = '0'
			code[1]++
		}
		if code[1] > '9' {
			code[1] = '0'
			code[0]++
		}
	}
	codes = append(codes, end)
	return codes
}
