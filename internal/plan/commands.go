package plan

import "github.com/tkoval83/axidraw/internal/geom"

// CommandKind discriminates the instructions an executor consumes.
type CommandKind int

const (
	// PenUpCmd lifts the instrument off the surface.
	PenUpCmd CommandKind = iota
	// PenDownCmd lowers the instrument onto the surface.
	PenDownCmd
	// MoveCmd moves the pen to To at the given Speed.
	MoveCmd
)

// Command is one device-agnostic plotting instruction.
type Command struct {
	Kind  CommandKind
	To    geom.Point // MoveCmd only
	Speed int        // MoveCmd only
}

// Commands walks the plan's edges in order and materializes the execution
// contract: a pen transition is emitted only when the pen state changes from
// the previous segment, followed by a move to the segment's endpoint. The
// pen is assumed raised before the first command.
func Commands(p Plan) []Command {
	var out []Command
	penUp := true
	for _, e := range p.Edges {
		if e.PenUp != penUp {
			penUp = e.PenUp
			if penUp {
				out = append(out, Command{Kind: PenUpCmd})
			} else {
				out = append(out, Command{Kind: PenDownCmd})
			}
		}
		out = append(out, Command{Kind: MoveCmd, To: e.To, Speed: e.Speed})
	}
	return out
}
