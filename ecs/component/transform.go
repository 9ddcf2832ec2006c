package component

// Transform places an entity on the track. X is the lateral offset from the
// middle lane, Y the height of the entity's base above the ground and Z the
// distance travelled along the track. Rotation is in degrees about the
// forward axis; the roll posture rotates the player by -90.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
