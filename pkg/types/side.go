package types

// Side identifies one of the two panes.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Other returns the opposite pane, the implicit destination of
// cross-pane transfers.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}
