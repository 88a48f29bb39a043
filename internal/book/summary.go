package book

import (
	"fmt"
	"os"
)

// Summary is the sidecar ".txt" report dump_book writes alongside the
// binary book.
type Summary struct {
	Games int
	Moves int
}

// WriteFile writes the summary in the fixed two-line format
// "Games: <n>\nMoves: <n>\n".
func (s Summary) WriteFile(path string) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("Games: %d\nMoves: %d\n", s.Games, s.Moves)), 0o644)
}
