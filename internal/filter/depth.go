package filter

// Depth counts halfmoves played in the current game and flags once the
// cap is passed, freezing the rest of the game for the aggregator.
type Depth struct {
	maxDepth int
	ply      int
}

// NewDepth returns a Depth filter capping games at maxDepth halfmoves.
func NewDepth(maxDepth int) *Depth {
	return &Depth{maxDepth: maxDepth}
}

// StartMoves resets the ply counter for a newly-accepted game.
func (d *Depth) StartMoves() { d.ply = 0 }

// Move bumps the ply counter; call once per move event, before checking
// ShouldSkip.
func (d *Depth) Move() { d.ply++ }

// ShouldSkip reports whether the current ply exceeds the depth cap.
func (d *Depth) ShouldSkip() bool {
	return d.ply > d.maxDepth
}
