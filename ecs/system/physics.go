package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/session"
)

// The physics space is the side plane of the track: cp X is the distance
// along the track (Transform.Z) and cp Y is height (Transform.Y). Lanes are
// kept apart with shape filter categories instead of geometry.
const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypeObstacle
	collisionTypeCoin
)

const (
	groundCategory uint = 1 << component.LaneCount
	playerCategory uint = groundCategory << 1

	groundDepth  = 10.0
	groundLength = 1e7
	// contact normals steeper than this count as standing on the ground
	groundNormal = 0.5
)

func laneCategory(l component.LaneIndex) uint {
	return 1 << uint(l)
}

func lanesMask(lanes []component.LaneIndex) uint {
	var mask uint
	for _, l := range lanes {
		if l.Valid() {
			mask |= laneCategory(l)
		}
	}
	return mask
}

// PhysicsSystem is the fixed-rate half of the integrator. Each step it
// applies the pending lateral goal, swaps the player's capsule when the
// posture changed, drives the bodies with the runner's velocities and steps
// the Chipmunk space. Contacts found during the step land in the player's
// PlayerCollision.
type PhysicsSystem struct {
	session *session.State
	space   *cp.Space
	ground  *cp.Shape

	entities map[ecs.Entity]*bodyInfo
	contacts map[ecs.Entity]*component.PlayerCollision
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(s *session.State) *PhysicsSystem {
	ps := &PhysicsSystem{session: s}
	ps.Reset()
	return ps
}

// Reset drops every body and starts a fresh space.
func (ps *PhysicsSystem) Reset() {
	ps.space = cp.NewSpace()
	ps.space.Iterations = 20
	ps.space.SetGravity(cp.Vector{})
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.contacts = make(map[ecs.Entity]*component.PlayerCollision)
	ps.addGround()
	ps.addHandlers()
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || !ps.session.Running() {
		return
	}
	dt := w.Time().FixedDelta
	if dt <= 0 {
		dt = ecs.DefaultFixedDelta
	}

	ps.syncEntities(w)
	ps.preparePlayers(w)
	ps.driveKinematics(w)

	ps.space.Step(dt)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) addGround() {
	bb := cp.BB{L: -groundLength, B: -groundDepth, R: groundLength, T: 0}
	ground := cp.NewBox2(ps.space.StaticBody, bb, 0)
	ground.SetFriction(0)
	ground.SetCollisionType(collisionTypeGround)
	ground.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, groundCategory, cp.ALL_CATEGORIES))
	ps.space.AddShape(ground)
	ps.ground = ground
}

func (ps *PhysicsSystem) addHandlers() {
	obstacles := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeObstacle)
	obstacles.UserData = ps
	obstacles.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok {
			return true
		}
		sys.record(arb, false)
		return true
	}

	coins := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeCoin)
	coins.UserData = ps
	coins.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok {
			return true
		}
		sys.record(arb, true)
		return true
	}

	ground := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeGround)
	ground.UserData = ps
	ground.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok {
			return true
		}
		playerShape, _ := arb.Shapes()
		// the normal points from the player into the ground
		if arb.Normal().Y > -groundNormal {
			return true
		}
		if playerShape.Body().Velocity().Y > 0 {
			return true
		}
		if pc := sys.contactsFor(playerShape); pc != nil {
			pc.Grounded = true
		}
		return true
	}
}

func (ps *PhysicsSystem) record(arb *cp.Arbiter, overlap bool) {
	playerShape, otherShape := arb.Shapes()
	pc := ps.contactsFor(playerShape)
	if pc == nil {
		return
	}
	other, ok := otherShape.UserData.(ecs.Entity)
	if !ok {
		return
	}
	info, ok := ps.entities[other]
	if !ok || info.shape != otherShape {
		return
	}
	category, ok := otherShape.Body().UserData.(component.Category)
	if !ok {
		return
	}
	contact := component.Contact{Other: uint64(other), Category: category}
	if overlap {
		pc.Overlaps = append(pc.Overlaps, contact)
	} else {
		pc.Blocking = append(pc.Blocking, contact)
	}
}

func (ps *PhysicsSystem) contactsFor(shape *cp.Shape) *component.PlayerCollision {
	e, ok := shape.UserData.(ecs.Entity)
	if !ok {
		return nil
	}
	return ps.contacts[e]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.ColliderComponent.Kind()) {
			continue
		}
		ps.removeBody(info)
		delete(ps.entities, e)
		delete(ps.contacts, e)
	}

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, col *component.Collider, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		var info *bodyInfo
		switch col.Category {
		case component.CategoryPlayer:
			if body == nil {
				return
			}
			info = ps.createPlayer(w, e, col, body, t)
		case component.CategoryObstacle, component.CategoryMovingObstacle, component.CategoryCoin:
			info = ps.createTrackObject(e, col, body, t)
		}
		if info == nil {
			return
		}
		ps.entities[e] = info
		if body != nil {
			body.Body = info.body
			body.Shape = info.shape
		}
	})
}

func (ps *PhysicsSystem) createPlayer(w *ecs.World, e ecs.Entity, col *component.Collider, pb *component.PhysicsBody, t *component.Transform) *bodyInfo {
	mass := pb.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: t.Z, Y: t.Y})
	body.UserData = col.Category
	ps.space.AddBody(body)

	info := &bodyInfo{body: body}
	posture := component.PostureStanding
	if roll, ok := ecs.Get(w, e, component.RollComponent.Kind()); ok {
		posture = roll.Posture
	}
	info.shape = ps.playerShape(e, body, pb.Capsule(posture))
	pb.Applied = posture
	return info
}

func (ps *PhysicsSystem) playerShape(e ecs.Entity, body *cp.Body, c component.Capsule) *cp.Shape {
	a, b := c.Endpoints()
	shape := cp.NewSegment(body, a, b, c.Radius)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, playerCategory, groundCategory))
	shape.UserData = e
	ps.space.AddShape(shape)
	return shape
}

func (ps *PhysicsSystem) createTrackObject(e ecs.Entity, col *component.Collider, pb *component.PhysicsBody, t *component.Transform) *bodyInfo {
	var body *cp.Body
	static := true
	if col.Category == component.CategoryMovingObstacle {
		body = cp.NewKinematicBody()
		static = false
	} else {
		body = cp.NewStaticBody()
	}
	body.SetPosition(cp.Vector{X: t.Z, Y: t.Y})
	body.UserData = col.Category
	ps.space.AddBody(body)

	var shape *cp.Shape
	collisionType := collisionTypeObstacle
	if col.Category == component.CategoryCoin {
		r := col.Width / 2
		if r <= 0 {
			r = 0.3
		}
		shape = cp.NewCircle(body, r, cp.Vector{X: 0, Y: r})
		collisionType = collisionTypeCoin
	} else {
		depth := col.Depth
		if depth <= 0 {
			depth = 1
		}
		height := col.Height
		if height <= 0 {
			height = 1
		}
		shape = cp.NewBox2(body, cp.BB{L: 0, B: 0, R: depth, T: height}, 0)
	}
	shape.SetSensor(col.Sensor || col.Category == component.CategoryCoin)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionType)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, lanesMask(col.Lanes), cp.ALL_CATEGORIES))
	shape.UserData = e
	ps.space.AddShape(shape)

	if !static && pb != nil {
		body.SetVelocity(pb.VelocityZ, 0)
	}
	return &bodyInfo{body: body, shape: shape, static: static}
}

func (ps *PhysicsSystem) removeBody(info *bodyInfo) {
	if info == nil {
		return
	}
	if info.shape != nil && ps.space.ContainsShape(info.shape) {
		ps.space.RemoveShape(info.shape)
	}
	if info.body != nil && ps.space.ContainsBody(info.body) {
		ps.space.RemoveBody(info.body)
	}
}

// preparePlayers runs before the step: lateral goal, capsule swap, lane mask,
// velocity, and a fresh contact record.
func (ps *PhysicsSystem) preparePlayers(w *ecs.World) {
	ecs.ForEach2(w, component.RunnerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, r *component.Runner, t *component.Transform) {
		info, ok := ps.entities[e]
		if !ok {
			return
		}
		if r.LateralPending {
			t.X = r.LateralGoal
			r.LateralPending = false
		}

		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			if roll, ok := ecs.Get(w, e, component.RollComponent.Kind()); ok && roll.Posture != pb.Applied {
				ps.space.RemoveShape(info.shape)
				info.shape = ps.playerShape(e, info.body, pb.Capsule(roll.Posture))
				pb.Applied = roll.Posture
				pb.Shape = info.shape
			}
		}

		col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		spacing := 0.0
		if lane, ok := ecs.Get(w, e, component.LaneComponent.Kind()); ok {
			spacing = lane.Spacing
		}
		width := 0.0
		if col != nil {
			width = col.Width
		}
		mask := lanesMask(OccupiedLanes(t.X, width, spacing)) | groundCategory
		info.shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, playerCategory, mask))

		vy := 0.0
		if v, ok := ecs.Get(w, e, component.VerticalComponent.Kind()); ok {
			vy = v.Velocity
		}
		info.body.SetVelocity(r.ForwardSpeed, vy)
		info.body.SetPosition(cp.Vector{X: t.Z, Y: t.Y})

		pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		if !ok {
			return
		}
		pc.Grounded = false
		pc.Blocking = pc.Blocking[:0]
		pc.Overlaps = pc.Overlaps[:0]
		ps.contacts[e] = pc
	})
}

func (ps *PhysicsSystem) driveKinematics(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.body.GetType() != cp.BODY_KINEMATIC {
			continue
		}
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			info.body.SetVelocity(pb.VelocityZ, 0)
		}
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.Z = pos.X
		t.Y = pos.Y
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for e, pc := range ps.contacts {
		if v, ok := ecs.Get(w, e, component.VerticalComponent.Kind()); ok {
			v.Grounded = pc.Grounded
		}
	}
}

// OccupiedLanes lists the lanes overlapped by a body of the given width
// centred at lateral offset x.
func OccupiedLanes(x, width, spacing float64) []component.LaneIndex {
	if spacing <= 0 {
		return []component.LaneIndex{component.LaneMiddle}
	}
	half := width / 2
	var out []component.LaneIndex
	for l := component.LaneLeft; l <= component.LaneRight; l++ {
		centre := component.LateralOffset(l, spacing)
		if x+half > centre-spacing/2 && x-half < centre+spacing/2 {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		// off the track: clamp to the nearest edge lane
		if x < 0 {
			return []component.LaneIndex{component.LaneLeft}
		}
		return []component.LaneIndex{component.LaneRight}
	}
	return out
}
