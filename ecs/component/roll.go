package component

type Posture int

const (
	PostureStanding Posture = iota
	PostureRolling
)

const postureCount = 2

func (p Posture) String() string {
	switch p {
	case PostureStanding:
		return "standing"
	case PostureRolling:
		return "rolling"
	default:
		return "unknown"
	}
}

// RollRotation is the rotation offset applied while rolling.
const RollRotation = -90.0

// Roll is a one-shot timed posture change. Active is the single in-flight
// guard: a request while Active is dropped.
type Roll struct {
	Posture   Posture
	Active    bool
	Requested bool

	StartedAt        float64
	Duration         float64
	OriginalRotation float64
}

// Expired reports whether the active roll has run for its full duration at
// time now.
func (r Roll) Expired(now float64) bool {
	return r.Active && now-r.StartedAt >= r.Duration
}

var RollComponent = NewComponent[Roll]()
