package collision

import (
	"sort"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

// Kind identifies the geometry of a hitbox.
type Kind uint8

const (
	KindPoint Kind = iota
	KindCircle
	KindLine
	KindPolygon
	KindRectangle
	KindComposite

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindRectangle:
		return "rectangle"
	case KindComposite:
		return "composite"
	}
	return "unknown"
}

// Role is a purpose a hitbox serves for its body.
type Role uint8

const (
	RoleLocator Role = 1 << iota
	RoleCenter
	RoleOverlap
	RoleSolid
	RoleCollision

	numRoles = 5
)

func (r Role) index() int {
	switch r {
	case RoleLocator:
		return 0
	case RoleCenter:
		return 1
	case RoleOverlap:
		return 2
	case RoleSolid:
		return 3
	case RoleCollision:
		return 4
	}
	return -1
}

var allRoles = [numRoles]Role{RoleLocator, RoleCenter, RoleOverlap, RoleSolid, RoleCollision}

// Hitbox is a node in a tree of shapes. Its absolute transform is derived
// from its relative transform and its parent's absolute transform.
type Hitbox struct {
	id    uint64
	kind  Kind
	space *Space

	relPos   gamemath.Vector
	relFlipX bool
	relFlipY bool
	relAngle fixed.F

	absPos   gamemath.Vector
	absFlipX bool
	absFlipY bool
	absAngle fixed.F
	absUnit  gamemath.Vector

	// local geometry
	radius fixed.F
	diff   gamemath.Vector
	verts  []gamemath.Vector
	edges  gamemath.Rect

	// absolute geometry
	absVerts []gamemath.Vector
	bounds   gamemath.Rect

	parent    *Hitbox
	children  []*Hitbox
	component bool

	body      *Body
	roles     Role
	gridRoles Role
	surfaces  Direction
	cells     cellRange
}

func (s *Space) newHitbox(kind Kind, pos gamemath.Vector) *Hitbox {
	h := &Hitbox{
		id:       s.nextID(),
		kind:     kind,
		space:    s,
		relPos:   pos,
		surfaces: DirAll,
	}
	h.updateAbsolute()
	return h
}

// NewPoint creates a standalone point hitbox.
func (s *Space) NewPoint(pos gamemath.Vector) *Hitbox {
	return s.newHitbox(KindPoint, pos)
}

// NewCircle creates a standalone circle centered on pos.
func (s *Space) NewCircle(pos gamemath.Vector, radius fixed.F) *Hitbox {
	h := &Hitbox{id: s.nextID(), kind: KindCircle, space: s, relPos: pos, radius: radius.Abs(), surfaces: DirAll}
	h.updateAbsolute()
	return h
}

// NewLine creates a segment from pos to pos+diff.
func (s *Space) NewLine(pos, diff gamemath.Vector) *Hitbox {
	h := &Hitbox{id: s.nextID(), kind: KindLine, space: s, relPos: pos, diff: diff, surfaces: DirAll}
	h.updateAbsolute()
	return h
}

// NewPolygon creates a polygon whose vertices are relative to pos.
func (s *Space) NewPolygon(pos gamemath.Vector, verts ...gamemath.Vector) *Hitbox {
	h := &Hitbox{
		id:       s.nextID(),
		kind:     KindPolygon,
		space:    s,
		relPos:   pos,
		verts:    append([]gamemath.Vector(nil), verts...),
		surfaces: DirAll,
	}
	h.updateAbsolute()
	return h
}

// NewRectangle creates a rectangle whose edges are offsets from pos.
// Inverted edges are swapped.
func (s *Space) NewRectangle(pos gamemath.Vector, left, top, right, bottom fixed.F) *Hitbox {
	h := &Hitbox{
		id:       s.nextID(),
		kind:     KindRectangle,
		space:    s,
		relPos:   pos,
		edges:    orderedEdges(left, top, right, bottom),
		surfaces: DirAll,
	}
	h.updateAbsolute()
	return h
}

// NewRect creates a rectangle positioned at its top-left corner.
func (s *Space) NewRect(r gamemath.Rect) *Hitbox {
	return s.NewRectangle(gamemath.Vector{X: r.Left, Y: r.Top}, 0, 0, r.Width(), r.Height())
}

// NewComposite creates an empty composite. Its bounds are the union of the
// components added with AddComponent.
func (s *Space) NewComposite(pos gamemath.Vector) *Hitbox {
	return s.newHitbox(KindComposite, pos)
}

func orderedEdges(left, top, right, bottom fixed.F) gamemath.Rect {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return gamemath.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// --- Accessors ---

func (h *Hitbox) ID() uint64          { return h.id }
func (h *Hitbox) Kind() Kind          { return h.kind }
func (h *Hitbox) Space() *Space       { return h.space }
func (h *Hitbox) Parent() *Hitbox     { return h.parent }
func (h *Hitbox) Body() *Body         { return h.body }
func (h *Hitbox) Roles() Role         { return h.roles }
func (h *Hitbox) HasRole(r Role) bool { return h.roles&r != 0 }
func (h *Hitbox) Surfaces() Direction { return h.surfaces }

// Children returns the direct children ordered by id.
func (h *Hitbox) Children() []*Hitbox {
	return append([]*Hitbox(nil), h.children...)
}

// Components returns the children that make up a composite.
func (h *Hitbox) Components() []*Hitbox {
	var out []*Hitbox
	for _, c := range h.children {
		if c.component {
			out = append(out, c)
		}
	}
	return out
}

func (h *Hitbox) RelativePosition() gamemath.Vector { return h.relPos }
func (h *Hitbox) RelativeFlipX() bool               { return h.relFlipX }
func (h *Hitbox) RelativeFlipY() bool               { return h.relFlipY }
func (h *Hitbox) RelativeAngle() fixed.F            { return h.relAngle }

func (h *Hitbox) AbsolutePosition() gamemath.Vector { return h.absPos }
func (h *Hitbox) AbsoluteFlipX() bool               { return h.absFlipX }
func (h *Hitbox) AbsoluteFlipY() bool               { return h.absFlipY }
func (h *Hitbox) AbsoluteAngle() fixed.F            { return h.absAngle }

func (h *Hitbox) AbsoluteLeft() fixed.F   { return h.bounds.Left }
func (h *Hitbox) AbsoluteRight() fixed.F  { return h.bounds.Right }
func (h *Hitbox) AbsoluteTop() fixed.F    { return h.bounds.Top }
func (h *Hitbox) AbsoluteBottom() fixed.F { return h.bounds.Bottom }

// Bounds returns the absolute bounding box.
func (h *Hitbox) Bounds() gamemath.Rect { return h.bounds }

// Radius is the circle radius, zero for other kinds.
func (h *Hitbox) Radius() fixed.F { return h.radius }

// Vertices returns the absolute vertices of a line or polygon, or the four
// corners of a rectangle.
func (h *Hitbox) Vertices() []gamemath.Vector {
	switch h.kind {
	case KindRectangle:
		b := h.bounds
		return []gamemath.Vector{
			{X: b.Left, Y: b.Top}, {X: b.Right, Y: b.Top},
			{X: b.Right, Y: b.Bottom}, {X: b.Left, Y: b.Bottom},
		}
	case KindLine, KindPolygon:
		return append([]gamemath.Vector(nil), h.absVerts...)
	}
	return nil
}

// --- Transform mutators ---

func (h *Hitbox) SetRelativePosition(p gamemath.Vector) {
	if h.relPos == p {
		return
	}
	h.relPos = p
	h.changed()
}

// Translate shifts the relative position by d.
func (h *Hitbox) Translate(d gamemath.Vector) {
	if d.IsZero() {
		return
	}
	h.SetRelativePosition(h.relPos.Add(d))
}

func (h *Hitbox) SetRelativeFlipX(flip bool) {
	if h.relFlipX == flip {
		return
	}
	h.relFlipX = flip
	h.changed()
}

func (h *Hitbox) SetRelativeFlipY(flip bool) {
	if h.relFlipY == flip {
		return
	}
	h.relFlipY = flip
	h.changed()
}

// SetRelativeAngle sets the rotation in degrees. Angles are normalized to
// [0, 360).
func (h *Hitbox) SetRelativeAngle(deg fixed.F) {
	deg = fixed.NormalizeAngle(deg)
	if h.relAngle == deg {
		return
	}
	h.relAngle = deg
	h.changed()
}

// SetRadius changes a circle's radius.
func (h *Hitbox) SetRadius(r fixed.F) bool {
	if h.kind != KindCircle {
		return false
	}
	h.radius = r.Abs()
	h.changed()
	return true
}

// SetEdges changes a rectangle's edge offsets.
func (h *Hitbox) SetEdges(left, top, right, bottom fixed.F) bool {
	if h.kind != KindRectangle {
		return false
	}
	h.edges = orderedEdges(left, top, right, bottom)
	h.changed()
	return true
}

// SetDifference changes the vector from a line's start to its end.
func (h *Hitbox) SetDifference(diff gamemath.Vector) bool {
	if h.kind != KindLine {
		return false
	}
	h.diff = diff
	h.changed()
	return true
}

// SetVertices replaces a polygon's relative vertices.
func (h *Hitbox) SetVertices(verts ...gamemath.Vector) bool {
	if h.kind != KindPolygon {
		return false
	}
	h.verts = append(h.verts[:0], verts...)
	h.changed()
	return true
}

// SetSurfaces sets which sides of the hitbox are solid.
func (h *Hitbox) SetSurfaces(d Direction) {
	d &= DirAll
	if h.surfaces == d {
		return
	}
	old := h.surfaces
	h.surfaces = d
	if h.gridRoles&RoleSolid != 0 {
		h.space.surfacesChanged(h, old)
	}
}

// SetSurface turns a single side on or off.
func (h *Hitbox) SetSurface(side Direction, solid bool) {
	if solid {
		h.SetSurfaces(h.surfaces | side)
	} else {
		h.SetSurfaces(h.surfaces &^ side)
	}
}

// --- Tree ---

// IsAncestorOf reports whether h is a strict ancestor of o.
func (h *Hitbox) IsAncestorOf(o *Hitbox) bool {
	for p := o.parent; p != nil; p = p.parent {
		if p == h {
			return true
		}
	}
	return false
}

// Root returns the top of the tree containing h.
func (h *Hitbox) Root() *Hitbox {
	r := h
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// AddChild attaches c below h. It fails when c is nil, already parented,
// the locator of a body, an ancestor of h, or from another space.
func (h *Hitbox) AddChild(c *Hitbox) bool {
	if c == nil || c == h || c.space != h.space || c.parent != nil {
		return false
	}
	if c.body != nil || c.roles != 0 {
		return false
	}
	if c.IsAncestorOf(h) {
		return false
	}
	c.parent = h
	h.children = insertByID(h.children, c)
	if h.body != nil {
		c.setBody(h.body)
	}
	c.updateAbsolute()
	c.bubbleBounds()
	return true
}

// RemoveChild detaches c from h. It fails when c is not a child of h or
// when any hitbox under c still serves a role.
func (h *Hitbox) RemoveChild(c *Hitbox) bool {
	if c == nil || c.parent != h || c.treeHasRoles() {
		return false
	}
	h.children = removeByID(h.children, c)
	c.parent = nil
	wasComponent := c.component
	c.component = false
	c.setBody(nil)
	c.updateAbsolute()
	if wasComponent {
		h.refreshComposite()
	}
	return true
}

// AddComponent attaches c as a component of the composite h.
func (h *Hitbox) AddComponent(c *Hitbox) bool {
	if h.kind != KindComposite || c == nil {
		return false
	}
	if !h.AddChild(c) {
		return false
	}
	c.component = true
	h.refreshComposite()
	return true
}

// RemoveComponent detaches a component from the composite h.
func (h *Hitbox) RemoveComponent(c *Hitbox) bool {
	if c == nil || !c.component {
		return false
	}
	return h.RemoveChild(c)
}

func (h *Hitbox) treeHasRoles() bool {
	if h.roles != 0 {
		return true
	}
	for _, c := range h.children {
		if c.treeHasRoles() {
			return true
		}
	}
	return false
}

func (h *Hitbox) setBody(b *Body) {
	h.body = b
	for _, c := range h.children {
		c.setBody(b)
	}
}

func insertByID(list []*Hitbox, h *Hitbox) []*Hitbox {
	i := sort.Search(len(list), func(i int) bool { return list[i].id >= h.id })
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = h
	return list
}

func removeByID(list []*Hitbox, h *Hitbox) []*Hitbox {
	i := sort.Search(len(list), func(i int) bool { return list[i].id >= h.id })
	if i < len(list) && list[i] == h {
		copy(list[i:], list[i+1:])
		list[len(list)-1] = nil
		list = list[:len(list)-1]
	}
	return list
}

// --- Absolute transform ---

func (h *Hitbox) changed() {
	h.updateAbsolute()
	h.bubbleBounds()
}

// updateAbsolute recomputes h and every descendant, then re-registers
// their bounds with the grid.
func (h *Hitbox) updateAbsolute() {
	if p := h.parent; p != nil {
		h.absFlipX = p.absFlipX != h.relFlipX
		h.absFlipY = p.absFlipY != h.relFlipY
		angle := h.relAngle
		if p.absFlipX != p.absFlipY {
			angle = -angle
		}
		h.absAngle = fixed.NormalizeAngle(p.absAngle + angle)
		h.absPos = p.absPos.Add(h.relPos.Flip(p.absFlipX, p.absFlipY).Rotate(p.absUnit))
	} else {
		h.absFlipX = h.relFlipX
		h.absFlipY = h.relFlipY
		h.absAngle = h.relAngle
		h.absPos = h.relPos
	}
	h.absUnit = gamemath.FromAngle(h.absAngle)
	h.updateGeometry()

	for _, c := range h.children {
		c.updateAbsolute()
	}
	if h.kind == KindComposite {
		h.bounds = h.compositeBounds()
	}
	if h.gridRoles != 0 {
		h.space.onBoundsChanged(h)
	}
}

// bubbleBounds refreshes composite ancestors whose union includes h.
func (h *Hitbox) bubbleBounds() {
	for c := h; c.component && c.parent != nil; c = c.parent {
		c.parent.refreshComposite()
	}
}

func (h *Hitbox) refreshComposite() {
	if h.kind != KindComposite {
		return
	}
	nb := h.compositeBounds()
	if nb == h.bounds {
		return
	}
	h.bounds = nb
	if h.gridRoles != 0 {
		h.space.onBoundsChanged(h)
	}
}

func (h *Hitbox) compositeBounds() gamemath.Rect {
	var (
		r     gamemath.Rect
		found bool
	)
	for _, c := range h.children {
		if !c.component {
			continue
		}
		if !found {
			r = c.bounds
			found = true
			continue
		}
		r = r.Union(c.bounds)
	}
	if !found {
		return pointRect(h.absPos)
	}
	return r
}

// place maps a local vertex into absolute space using h's own transform.
func (h *Hitbox) place(v gamemath.Vector) gamemath.Vector {
	return h.absPos.Add(v.Flip(h.absFlipX, h.absFlipY).Rotate(h.absUnit))
}

func (h *Hitbox) updateGeometry() {
	switch h.kind {
	case KindPoint, KindComposite:
		h.bounds = pointRect(h.absPos)
	case KindCircle:
		h.bounds = gamemath.Rect{
			Left:   h.absPos.X - h.radius,
			Top:    h.absPos.Y - h.radius,
			Right:  h.absPos.X + h.radius,
			Bottom: h.absPos.Y + h.radius,
		}
	case KindLine:
		h.absVerts = append(h.absVerts[:0], h.absPos, h.place(h.diff))
		h.bounds = vertexBounds(h.absVerts)
	case KindPolygon:
		h.absVerts = h.absVerts[:0]
		for _, v := range h.verts {
			h.absVerts = append(h.absVerts, h.place(v))
		}
		if len(h.absVerts) == 0 {
			h.bounds = pointRect(h.absPos)
		} else {
			h.bounds = vertexBounds(h.absVerts)
		}
	case KindRectangle:
		e := turnEdges(flipEdges(h.edges, h.absFlipX, h.absFlipY), h.absAngle)
		h.bounds = e.Translate(h.absPos)
	}
}

func pointRect(p gamemath.Vector) gamemath.Rect {
	return gamemath.Rect{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y}
}

func vertexBounds(vs []gamemath.Vector) gamemath.Rect {
	r := pointRect(vs[0])
	for _, v := range vs[1:] {
		r.Left = fixed.Min(r.Left, v.X)
		r.Right = fixed.Max(r.Right, v.X)
		r.Top = fixed.Min(r.Top, v.Y)
		r.Bottom = fixed.Max(r.Bottom, v.Y)
	}
	return r
}

func flipEdges(e gamemath.Rect, x, y bool) gamemath.Rect {
	if x {
		e.Left, e.Right = -e.Right, -e.Left
	}
	if y {
		e.Top, e.Bottom = -e.Bottom, -e.Top
	}
	return e
}

// turnEdges rotates rectangle edges by the nearest quarter turn.
// Rectangles stay axis-aligned.
func turnEdges(e gamemath.Rect, deg fixed.F) gamemath.Rect {
	quarter := int((deg + 45*fixed.One) / (90 * fixed.One) % 4)
	switch quarter {
	case 1:
		return gamemath.Rect{Left: e.Top, Top: -e.Right, Right: e.Bottom, Bottom: -e.Left}
	case 2:
		return gamemath.Rect{Left: -e.Right, Top: -e.Bottom, Right: -e.Left, Bottom: -e.Top}
	case 3:
		return gamemath.Rect{Left: -e.Bottom, Top: e.Left, Right: -e.Top, Bottom: e.Right}
	}
	return e
}
