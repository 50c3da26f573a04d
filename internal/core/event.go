package core

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventMatched      EventKind = iota // a swap produced a match
	EventChain                         // a refill produced a follow-up match
	EventInvalid                       // a swap was reverted or rejected
	EventReshuffled                    // a dead board was rebuilt
	EventLevelCleared                  // the campaign target was reached
	EventGameOver                      // the run ended
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventMatched:
		return "matched"
	case EventChain:
		return "chain"
	case EventInvalid:
		return "invalid"
	case EventReshuffled:
		return "reshuffled"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by games for the platform to turn into sound and log lines.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Count  int // tiles removed, when relevant
	Chain  int // cascade depth, when relevant
	Points int // points awarded, when relevant
	Level  int
}
