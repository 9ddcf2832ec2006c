package component

// Category classifies physical entities for collision response.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryObstacle
	CategoryMovingObstacle
	CategoryCoin
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryObstacle:
		return "obstacle"
	case CategoryMovingObstacle:
		return "moving_obstacle"
	case CategoryCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// ParseCategory maps prefab names to categories.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "player":
		return CategoryPlayer, true
	case "obstacle":
		return CategoryObstacle, true
	case "moving_obstacle":
		return CategoryMovingObstacle, true
	case "coin":
		return CategoryCoin, true
	default:
		return 0, false
	}
}

// Collider attaches an entity to the physics space. Lanes lists the lanes a
// track object occupies; the player derives its lanes from its position.
type Collider struct {
	Category Category
	Lanes    []LaneIndex
	// Width is the lateral extent, used for the player's lane band and for
	// rendering.
	Width float64
	// Height and Depth size the box of track objects. Depth runs along Z.
	Height float64
	Depth  float64
	// Sensor colliders report overlaps and never block.
	Sensor bool
}

var ColliderComponent = NewComponent[Collider]()

// Contact is one collision reported by the physics step.
type Contact struct {
	Other    uint64
	Category Category
}

// PlayerCollision is rebuilt by every physics step.
type PlayerCollision struct {
	Grounded bool
	Blocking []Contact
	Overlaps []Contact
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
