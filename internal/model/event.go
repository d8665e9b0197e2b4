package model

// Kind is the cause of a teleport.
type Kind int

const (
	Waiting   Kind = iota // vehicle waited too long
	Collision             // vehicle collided with its leader
)

// Kinds lists every Kind in report order.
var Kinds = []Kind{Waiting, Collision}

func (k Kind) String() string {
	switch k {
	case Waiting:
		return "waiting"
	case Collision:
		return "collision"
	default:
		return "unknown"
	}
}

// LogEvent is a single recognized teleport warning.
type LogEvent struct {
	Location string // lane or segment id, after normalization
	Time     int64  // simulation seconds, fraction truncated
	Kind     Kind
}
