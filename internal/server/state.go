package server

// State is a step of the startup sequence.
//
//	NotConnected -> Connected -> Listening
//	NotConnected -> Failed
type State int32

const (
	StateNotConnected State = iota
	StateConnected
	StateListening
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotConnected:
		return "not_connected"
	case StateConnected:
		return "connected"
	case StateListening:
		return "listening"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
