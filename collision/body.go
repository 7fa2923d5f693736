package collision

import (
	"slices"
	"sort"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

// Collider decides how a body reacts when its movement meets other. dir is
// the side of self that made contact.
type Collider interface {
	Collide(self, other *Body, dir Direction) Response
}

// ColliderFunc adapts a function to Collider.
type ColliderFunc func(self, other *Body, dir Direction) Response

func (f ColliderFunc) Collide(self, other *Body, dir Direction) Response {
	return f(self, other, dir)
}

// MovementHooks is implemented by colliders that want to run around the
// resolve pass of every tick.
type MovementHooks interface {
	BeforeMovement(b *Body)
	AfterMovement(b *Body)
}

// Contact is one collision recorded during a tick.
type Contact struct {
	Other    *Body
	Hitbox   *Hitbox
	Dir      Direction
	Response Response
	// Pressing is set when the sides were already flush.
	Pressing bool
	// Pushed is set when the contact came from one body pushing another.
	Pushed bool
}

// Body is a movable or static object in a space. Its position is the
// absolute position of its locator hitbox.
type Body struct {
	id    uint64
	space *Space
	added bool

	locator      *Hitbox
	center       *Hitbox
	overlapBox   *Hitbox
	solidBox     *Hitbox
	collisionBox *Hitbox

	priority int
	velocity gamemath.Vector
	step     gamemath.Vector

	pressing   bool
	pressAngle fixed.F

	leader    *Body
	followers []*Body
	effLeader *Body

	collider Collider

	displacement gamemath.Vector
	contacts     []Contact
	pressedFrom  Direction

	// Tags label the body for query filters.
	Tags []string
	// Data points back at whatever owns the body.
	Data any
}

// NewBody creates a body located by locator, which must be a root hitbox
// of this space that no other body uses. A nil collider slides on every
// collision.
func (s *Space) NewBody(locator *Hitbox, c Collider) (*Body, bool) {
	if locator == nil || locator.space != s || locator.parent != nil || locator.body != nil {
		return nil, false
	}
	b := &Body{id: s.nextID(), space: s, collider: c}
	b.attachLocator(locator)
	return b, true
}

func (b *Body) attachLocator(locator *Hitbox) {
	locator.setBody(b)
	b.locator = locator
	locator.roles |= RoleLocator

	if b.center == nil {
		b.center = b.space.NewPoint(gamemath.Zero)
	}
	locator.AddChild(b.center)
	b.center.roles |= RoleCenter
}

func (b *Body) ID() uint64               { return b.id }
func (b *Body) Space() *Space            { return b.space }
func (b *Body) Added() bool              { return b.added }
func (b *Body) Locator() *Hitbox         { return b.locator }
func (b *Body) Center() *Hitbox          { return b.center }
func (b *Body) OverlapHitbox() *Hitbox   { return b.overlapBox }
func (b *Body) SolidHitbox() *Hitbox     { return b.solidBox }
func (b *Body) CollisionHitbox() *Hitbox { return b.collisionBox }
func (b *Body) Collider() Collider       { return b.collider }

func (b *Body) SetCollider(c Collider) { b.collider = c }

// SetLocator moves the body onto a new locator tree. Overlap, solid and
// collision hitboxes in the old tree are released. While the space is busy
// the swap waits for the current scan to finish.
func (b *Body) SetLocator(h *Hitbox) bool {
	if h == nil || h.space != b.space || h.parent != nil || h.body != nil {
		return false
	}
	b.space.Defer(func() { b.swapLocator(h) })
	return true
}

func (b *Body) swapLocator(h *Hitbox) {
	if h.parent != nil || h.body != nil {
		return
	}
	added := b.added
	if added {
		b.space.remove(b)
	}
	b.SetOverlapHitbox(nil)
	b.SetSolidHitbox(nil)
	b.SetCollisionHitbox(nil)

	old := b.locator
	old.roles &^= RoleLocator
	b.center.roles &^= RoleCenter
	b.center.parent.RemoveChild(b.center)
	old.setBody(nil)

	b.attachLocator(h)
	if added {
		b.space.add(b)
	}
}

func (b *Body) roleHitboxes() []*Hitbox {
	out := []*Hitbox{b.locator, b.center}
	for _, h := range []*Hitbox{b.overlapBox, b.solidBox, b.collisionBox} {
		if h != nil && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

func (b *Body) setRoleHitbox(slot **Hitbox, h *Hitbox, r Role) bool {
	if h != nil && h.body != b {
		return false
	}
	b.space.Defer(func() {
		if h != nil && h.body != b {
			return
		}
		old := *slot
		if old == h {
			return
		}
		// Assign first so an old hitbox above h keeps its place in the tree.
		*slot = h
		if h != nil {
			b.space.assignRole(h, r)
		}
		if old != nil {
			b.space.unassignRole(old, r)
		}
	})
	return true
}

// SetOverlapHitbox assigns the hitbox used by overlap queries. h must be in
// the locator's tree. nil clears the role.
func (b *Body) SetOverlapHitbox(h *Hitbox) bool {
	return b.setRoleHitbox(&b.overlapBox, h, RoleOverlap)
}

// SetSolidHitbox assigns the hitbox whose solid surfaces block movement.
func (b *Body) SetSolidHitbox(h *Hitbox) bool {
	return b.setRoleHitbox(&b.solidBox, h, RoleSolid)
}

// SetCollisionHitbox assigns the hitbox that moves against solids and
// pushes other bodies.
func (b *Body) SetCollisionHitbox(h *Hitbox) bool {
	return b.setRoleHitbox(&b.collisionBox, h, RoleCollision)
}

// --- position ---

func (b *Body) Position() gamemath.Vector { return b.locator.absPos }

// SetPosition teleports the body without resolving collisions. Followers
// keep their offset.
func (b *Body) SetPosition(p gamemath.Vector) {
	b.shift(p.Sub(b.locator.absPos))
}

func (b *Body) shift(d gamemath.Vector) {
	if d.IsZero() {
		return
	}
	b.locator.Translate(d)
	for _, f := range b.followers {
		f.shift(d)
	}
}

// translate moves only b and records the displacement.
func (b *Body) translate(d gamemath.Vector) {
	if d.IsZero() {
		return
	}
	b.locator.Translate(d)
	b.displacement = b.displacement.Add(d)
}

// --- movement state ---

func (b *Body) Priority() int                 { return b.priority }
func (b *Body) SetPriority(p int)             { b.priority = p }
func (b *Body) Velocity() gamemath.Vector     { return b.velocity }
func (b *Body) SetVelocity(v gamemath.Vector) { b.velocity = v }

// Step returns the one-shot displacement added to the next tick.
func (b *Body) Step() gamemath.Vector { return b.step }

// SetStep replaces the pending one-shot displacement.
func (b *Body) SetStep(v gamemath.Vector) { b.step = v }

// AddStep accumulates a one-shot displacement for the next tick.
func (b *Body) AddStep(v gamemath.Vector) { b.step = b.step.Add(v) }

// PressingAngle returns the angle the body presses toward and whether it
// is pressing at all.
func (b *Body) PressingAngle() (fixed.F, bool) { return b.pressAngle, b.pressing }

// SetPressingAngle makes the body push against surfaces in the given
// direction even when it is not moving.
func (b *Body) SetPressingAngle(deg fixed.F) {
	b.pressing = true
	b.pressAngle = fixed.NormalizeAngle(deg)
}

func (b *Body) ClearPressingAngle() {
	b.pressing = false
	b.pressAngle = 0
}

// Displacement is the distance moved during the last tick.
func (b *Body) Displacement() gamemath.Vector { return b.displacement }

// Contacts returns the collisions recorded during the last tick.
func (b *Body) Contacts() []Contact { return b.contacts }

// PressedFrom returns the sides the body was pushed from during the last
// tick.
func (b *Body) PressedFrom() Direction { return b.pressedFrom }

// Touching reports whether a contact with dir was recorded last tick.
func (b *Body) Touching(dir Direction) bool {
	for _, c := range b.contacts {
		if c.Dir&dir != 0 && (c.Response != ResponseNone || c.Pushed) {
			return true
		}
	}
	return false
}

func (b *Body) resetTick() {
	b.displacement = gamemath.Zero
	b.contacts = b.contacts[:0]
	b.pressedFrom = DirNone
}

func (b *Body) record(c Contact) {
	b.contacts = append(b.contacts, c)
}

func (b *Body) collide(other *Body, dir Direction) Response {
	if b.collider == nil {
		return ResponseSlide
	}
	return b.collider.Collide(b, other, dir)
}

// --- leaders and followers ---

func (b *Body) Leader() *Body { return b.leader }

// Followers returns the direct followers ordered by id.
func (b *Body) Followers() []*Body {
	return append([]*Body(nil), b.followers...)
}

// SetLeader makes b follow l. It fails when l is b, belongs to another
// space, or already follows b. nil clears the leader.
func (b *Body) SetLeader(l *Body) bool {
	if l == b || (l != nil && l.space != b.space) {
		return false
	}
	for a := l; a != nil; a = a.leader {
		if a == b {
			return false
		}
	}
	if b.leader != nil {
		b.leader.followers = slices.DeleteFunc(b.leader.followers, func(f *Body) bool { return f == b })
	}
	b.leader = l
	b.effLeader = l
	if l != nil {
		l.followers = append(l.followers, b)
		sort.Slice(l.followers, func(i, j int) bool { return l.followers[i].id < l.followers[j].id })
	}
	return true
}

// related reports whether a and b are linked through the effective leader
// chain in either direction.
func related(a, b *Body) bool {
	for l := a.effLeader; l != nil; l = l.effLeader {
		if l == b {
			return true
		}
		if l == a {
			break
		}
	}
	for l := b.effLeader; l != nil; l = l.effLeader {
		if l == a {
			return true
		}
		if l == b {
			break
		}
	}
	return false
}

// HasTag reports whether the body carries tag.
func (b *Body) HasTag(tag string) bool {
	return slices.Contains(b.Tags, tag)
}
