package component

// LaneIndex is one of the three parallel tracks.
type LaneIndex int

const (
	LaneLeft LaneIndex = iota
	LaneMiddle
	LaneRight
)

const LaneCount = 3

func (l LaneIndex) Valid() bool {
	return l >= LaneLeft && l <= LaneRight
}

func (l LaneIndex) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneMiddle:
		return "middle"
	case LaneRight:
		return "right"
	default:
		return "invalid"
	}
}

// Lane tracks which lane an entity occupies. Spacing is the lateral distance
// between adjacent lanes.
type Lane struct {
	Index   LaneIndex
	Spacing float64
}

// ShiftLeft moves one lane left. It reports false at the left edge.
func (l *Lane) ShiftLeft() bool {
	if l.Index <= LaneLeft {
		l.Index = LaneLeft
		return false
	}
	l.Index--
	return true
}

// ShiftRight moves one lane right. It reports false at the right edge.
func (l *Lane) ShiftRight() bool {
	if l.Index >= LaneRight {
		l.Index = LaneRight
		return false
	}
	l.Index++
	return true
}

// TargetLateralOffset is the lateral position of the lane centre. It is not
// cached so Spacing may change between calls.
func (l Lane) TargetLateralOffset() float64 {
	return LateralOffset(l.Index, l.Spacing)
}

func LateralOffset(index LaneIndex, spacing float64) float64 {
	return float64(index-LaneMiddle) * spacing
}

var LaneComponent = NewComponent[Lane]()
