// Package physics adapts the cp rigid-body space and a resolv sensor space
// into the engine the game logic talks to: bodies addressed by handle,
// forces and impulses through cp, and two drainable event queues.
package physics

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Handle identifies a body or sensor owned by a World. The zero Handle is
// never issued.
type Handle uint32

const NoHandle Handle = 0

// Collision types.
const (
	KindPlanet cp.CollisionType = iota + 1
	KindPlayer
	KindBullet
)

var kinds = [...]cp.CollisionType{KindPlanet, KindPlayer, KindBullet}

const tagSensor = "sensor"
const tagProbe = "probe"

// Settings configures a World.
type Settings struct {
	Iterations int
	CellSize   int     // resolv cell size
	Extent     int     // side of the square sensor grid, centred on the origin
	Margin     float64 // distance outside a sensor that still counts as WithinMargin
	Profile    bool
}

// Stats are the profiling counters of the last step.
type Stats struct {
	Steps       int
	StepTime    time.Duration
	Bodies      int
	Sensors     int
	Contacts    int
	Proximities int
}

type collider struct {
	entity donburi.Entity
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

type sensor struct {
	handle Handle
	entity donburi.Entity
	center cp.Vector
	radius float64
	object *resolv.Object
}

type probe struct {
	handle Handle
	radius float64
	object *resolv.Object
	status map[Handle]ProximityStatus
}

// World owns every body, collider and sensor of a level.
type World struct {
	space   *cp.Space
	sensors *resolv.Space
	origin  float64
	margin  float64
	profile bool

	next      Handle
	colliders map[Handle]*collider
	zones     []*sensor
	probes    []*probe

	contacts    queue[ContactEvent]
	proximities queue[ProximityEvent]

	Stats Stats
}

func NewWorld(s Settings) *World {
	space := cp.NewSpace()
	space.Iterations = uint(s.Iterations)
	space.SetGravity(cp.Vector{})

	w := &World{
		space:     space,
		sensors:   resolv.NewSpace(s.Extent, s.Extent, s.CellSize, s.CellSize),
		origin:    float64(s.Extent) / 2,
		margin:    s.Margin,
		profile:   s.Profile,
		colliders: make(map[Handle]*collider),
	}
	w.installHandlers()
	return w
}

func (w *World) installHandlers() {
	for i, a := range kinds {
		for _, b := range kinds[i:] {
			if a == KindPlanet && b == KindPlanet {
				continue
			}
			h := w.space.NewCollisionHandler(a, b)
			h.UserData = w
			h.BeginFunc = beginContact
			h.SeparateFunc = separateContact
		}
	}
}

func beginContact(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	userData.(*World).pushContact(arb, true)
	return true
}

func separateContact(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
	userData.(*World).pushContact(arb, false)
}

func (w *World) pushContact(arb *cp.Arbiter, started bool) {
	a, b := arb.Shapes()
	ha, okA := a.UserData.(Handle)
	hb, okB := b.UserData.(Handle)
	if !okA || !okB {
		return
	}
	w.contacts.push(ContactEvent{A: ha, B: hb, Started: started})
	w.Stats.Contacts++
}

func (w *World) issue() Handle {
	w.next++
	return w.next
}

// AddPlanet adds a static circle owned by e.
func (w *World) AddPlanet(e donburi.Entity, center cp.Vector, radius, friction float64) Handle {
	h := w.issue()
	body := cp.NewStaticBody()
	body.SetPosition(center)
	body.UserData = h
	w.space.AddBody(body)

	shape := w.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetCollisionType(KindPlanet)
	shape.SetFriction(friction)
	shape.UserData = h

	w.colliders[h] = &collider{entity: e, body: body, shape: shape, static: true}
	return h
}

// BoxDef describes a dynamic rectangular body.
type BoxDef struct {
	Kind          cp.CollisionType
	Position      cp.Vector
	Velocity      cp.Vector
	Width, Height float64
	Mass          float64
	Friction      float64
	Group         uint // bodies sharing a non-zero group never collide
	FixedRotation bool
}

// AddBox adds a dynamic box owned by e.
func (w *World) AddBox(e donburi.Entity, def BoxDef) Handle {
	h := w.issue()
	moment := cp.MomentForBox(def.Mass, def.Width, def.Height)
	if def.FixedRotation {
		moment = cp.INFINITY
	}
	body := w.space.AddBody(cp.NewBody(def.Mass, moment))
	body.SetPosition(def.Position)
	body.SetVelocityVector(def.Velocity)
	body.UserData = h

	shape := w.space.AddShape(cp.NewBox(body, def.Width, def.Height, 0))
	shape.SetCollisionType(def.Kind)
	shape.SetFriction(def.Friction)
	shape.SetFilter(cp.NewShapeFilter(def.Group, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	shape.UserData = h

	w.colliders[h] = &collider{entity: e, body: body, shape: shape}
	return h
}

// AddSensor adds a non-colliding circular sensor owned by e. Tracked bodies
// report proximity transitions against it.
func (w *World) AddSensor(e donburi.Entity, center cp.Vector, radius float64) Handle {
	h := w.issue()
	s := &sensor{handle: h, entity: e, center: center, radius: radius}
	s.object = resolv.NewObject(center.X-radius+w.origin, center.Y-radius+w.origin, radius*2, radius*2, tagSensor)
	s.object.Data = s
	w.sensors.Add(s.object)
	w.zones = append(w.zones, s)
	return h
}

// Track makes the body h report proximity events. radius approximates the
// body's extent.
func (w *World) Track(h Handle, radius float64) {
	c, ok := w.colliders[h]
	if !ok || c.static {
		return
	}
	for _, p := range w.probes {
		if p.handle == h {
			return
		}
	}
	half := radius + w.margin
	pos := c.body.Position()
	p := &probe{handle: h, radius: radius, status: make(map[Handle]ProximityStatus)}
	p.object = resolv.NewObject(pos.X-half+w.origin, pos.Y-half+w.origin, half*2, half*2, tagProbe)
	w.sensors.Add(p.object)
	w.probes = append(w.probes, p)
}

// Body resolves a handle to its rigid body.
func (w *World) Body(h Handle) (*cp.Body, bool) {
	c, ok := w.colliders[h]
	if !ok {
		return nil, false
	}
	return c.body, true
}

// Entity resolves a body or sensor handle to the entity that owns it.
func (w *World) Entity(h Handle) (donburi.Entity, bool) {
	if c, ok := w.colliders[h]; ok {
		return c.entity, true
	}
	for _, s := range w.zones {
		if s.handle == h {
			return s.entity, true
		}
	}
	return donburi.Null, false
}

// Remove drops a body or sensor. Contacts it was part of are reported as
// ended. Unknown handles are ignored.
func (w *World) Remove(h Handle) {
	if c, ok := w.colliders[h]; ok {
		w.space.RemoveShape(c.shape)
		w.space.RemoveBody(c.body)
		delete(w.colliders, h)
		for i, p := range w.probes {
			if p.handle == h {
				w.sensors.Remove(p.object)
				w.probes = append(w.probes[:i], w.probes[i+1:]...)
				break
			}
		}
		return
	}
	for i, s := range w.zones {
		if s.handle != h {
			continue
		}
		w.sensors.Remove(s.object)
		w.zones = append(w.zones[:i], w.zones[i+1:]...)
		for _, p := range w.probes {
			delete(p.status, h)
		}
		return
	}
}

// Step integrates the space by dt and then refreshes sensor proximity.
func (w *World) Step(dt float64) {
	var start time.Time
	if w.profile {
		start = time.Now()
	}
	w.Stats.Contacts = 0
	w.Stats.Proximities = 0

	w.space.Step(dt)
	w.updateProximity()

	w.Stats.Steps++
	w.Stats.Bodies = len(w.colliders)
	w.Stats.Sensors = len(w.zones)
	if w.profile {
		w.Stats.StepTime = time.Since(start)
	}
}

func (w *World) updateProximity() {
	for _, p := range w.probes {
		c, ok := w.colliders[p.handle]
		if !ok {
			continue
		}
		pos := c.body.Position()
		half := p.radius + w.margin
		p.object.X = pos.X - half + w.origin
		p.object.Y = pos.Y - half + w.origin
		p.object.Update()

		near := map[*sensor]bool{}
		if check := p.object.Check(0, 0, tagSensor); check != nil {
			for _, o := range check.ObjectsByTags(tagSensor) {
				if s, ok := o.Data.(*sensor); ok {
					near[s] = true
				}
			}
		}

		for _, s := range w.zones {
			status := Disjoint
			if near[s] {
				status = w.classify(s, pos, p.radius)
			}
			if status == p.status[s.handle] {
				continue
			}
			p.status[s.handle] = status
			w.proximities.push(ProximityEvent{Body: p.handle, Sensor: s.handle, Status: status})
			w.Stats.Proximities++
		}
	}
}

func (w *World) classify(s *sensor, pos cp.Vector, radius float64) ProximityStatus {
	d := pos.Distance(s.center)
	switch {
	case d <= s.radius+radius:
		return Intersecting
	case d <= s.radius+radius+w.margin:
		return WithinMargin
	}
	return Disjoint
}

// PopContact removes the oldest pending contact event.
func (w *World) PopContact() (ContactEvent, bool) {
	return w.contacts.pop()
}

// PopProximity removes the oldest pending proximity event.
func (w *World) PopProximity() (ProximityEvent, bool) {
	return w.proximities.pop()
}

// Pending returns the number of queued contact and proximity events.
func (w *World) Pending() (contacts, proximities int) {
	return w.contacts.len(), w.proximities.len()
}
