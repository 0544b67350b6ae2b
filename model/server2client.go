package model

type ServerMessage struct {
	Visibles     []Visibilize
	RevealedSafe int
	Phase        Phase
	// Applied is false when the client action was a no-op.
	Applied bool
}

// Visibilize is what a client may know about a cell. Mine stays false
// while the cell is covered.
type Visibilize struct {
	Index   int
	Covered bool
	Mine    bool
}

type Action int

const (
	REVEAL Action = iota + 1
	RESTART
)

type ClientMessage struct {
	Action Action
	Index  int
}

// MakeServerMessage snapshots gs for the wire.
func MakeServerMessage(gs *GameState, applied bool) ServerMessage {
	visibles := make([]Visibilize, len(gs.cells))
	for i, c := range gs.cells {
		visibles[i] = Visibilize{
			Index:   i,
			Covered: c.Covered,
			Mine:    !c.Covered && c.Mine,
		}
	}
	return ServerMessage{
		Visibles:     visibles,
		RevealedSafe: gs.revealedSafe,
		Phase:        gs.phase,
		Applied:      applied,
	}
}
