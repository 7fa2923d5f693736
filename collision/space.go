// Package collision is the spatial core of the engine: a tree of hitboxes,
// a uniform grid that indexes them by role, overlap tests between every
// pair of shape kinds, queries, and the movement resolver that moves bodies
// through solid surfaces and pushes lower priority bodies out of the way.
//
// Everything runs on the caller's goroutine. Structural changes requested
// while a scan or a resolution is running are queued and applied when the
// outermost one returns.
package collision

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

// ErrInvalidCellSize is returned by NewSpace for non-positive cell sizes.
var ErrInvalidCellSize = errors.New("cell size must be positive")

// DefaultMaxResolveDepth bounds the recursion of a single resolution.
const DefaultMaxResolveDepth = 32

// Space owns hitboxes and bodies and indexes them in a grid of fixed-size
// cells.
type Space struct {
	cellW, cellH fixed.F

	cells       map[cellKey]*cell
	bounds      cellRange
	boundsDirty bool

	ids    uint64
	bodies map[*Body]struct{}

	busy    int
	pending []func()

	scanPool []hitboxSet
	maxDepth int

	inserts  uint64
	removals uint64
}

// NewSpace creates an empty space with the given cell size.
func NewSpace(cellW, cellH fixed.F) (*Space, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("new space %vx%v: %w", cellW, cellH, ErrInvalidCellSize)
	}
	log.Printf("[space] created with %vx%v cells", cellW, cellH)
	return &Space{
		cellW:    cellW,
		cellH:    cellH,
		cells:    make(map[cellKey]*cell),
		bodies:   make(map[*Body]struct{}),
		maxDepth: DefaultMaxResolveDepth,
	}, nil
}

func (s *Space) nextID() uint64 {
	s.ids++
	return s.ids
}

// CellSize returns the cell width and height.
func (s *Space) CellSize() (fixed.F, fixed.F) { return s.cellW, s.cellH }

// SetMaxResolveDepth bounds how deep one resolution may recurse. Values
// below one are ignored.
func (s *Space) SetMaxResolveDepth(depth int) {
	if depth < 1 {
		return
	}
	s.maxDepth = depth
}

func (s *Space) MaxResolveDepth() int { return s.maxDepth }

// Busy reports whether a scan or resolution is in progress.
func (s *Space) Busy() bool { return s.busy > 0 }

func (s *Space) begin() { s.busy++ }

// end closes a scan and drains the queue when it was the outermost one.
func (s *Space) end() {
	s.busy--
	if s.busy > 0 {
		return
	}
	for len(s.pending) > 0 {
		op := s.pending[0]
		s.pending = s.pending[1:]
		op()
	}
	s.pending = nil
}

// Defer runs op now, or after the outermost scan or resolution when one is
// in progress.
func (s *Space) Defer(op func()) {
	if s.busy > 0 {
		s.pending = append(s.pending, op)
		return
	}
	op()
}

// Add starts indexing b. It is deferred while the space is busy.
func (s *Space) Add(b *Body) {
	if b == nil || b.space != s {
		return
	}
	s.Defer(func() { s.add(b) })
}

// Remove stops indexing b. It is deferred while the space is busy.
func (s *Space) Remove(b *Body) {
	if b == nil || b.space != s {
		return
	}
	s.Defer(func() { s.remove(b) })
}

func (s *Space) add(b *Body) {
	if b.added {
		return
	}
	b.added = true
	s.bodies[b] = struct{}{}
	for _, h := range b.roleHitboxes() {
		for _, r := range allRoles {
			if h.roles&r != 0 {
				s.addToRole(h, r)
			}
		}
	}
}

func (s *Space) remove(b *Body) {
	if !b.added {
		return
	}
	for _, h := range b.roleHitboxes() {
		for _, r := range allRoles {
			s.removeFromRole(h, r)
		}
	}
	b.added = false
	delete(s.bodies, b)
	b.SetLeader(nil)
	for _, f := range b.Followers() {
		f.SetLeader(nil)
	}
}

// Contains reports whether b is currently indexed.
func (s *Space) Contains(b *Body) bool {
	_, ok := s.bodies[b]
	return ok
}

// Len returns the number of indexed bodies.
func (s *Space) Len() int { return len(s.bodies) }

// Bodies returns the indexed bodies ordered by id.
func (s *Space) Bodies() []*Body {
	out := make([]*Body, 0, len(s.bodies))
	for b := range s.bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// assignRole files h under r when its body is indexed.
func (s *Space) assignRole(h *Hitbox, r Role) {
	h.roles |= r
	if h.body != nil && h.body.added {
		s.addToRole(h, r)
	}
}

// unassignRole drops r from h. A hitbox left without roles leaves the grid
// and the body's tree, unless something below it still serves a role.
func (s *Space) unassignRole(h *Hitbox, r Role) {
	h.roles &^= r
	s.removeFromRole(h, r)
	if h.roles == 0 && h.parent != nil && !h.treeHasRoles() {
		h.parent.RemoveChild(h)
	}
}

// Bounds returns the area covered by the occupied cells.
func (s *Space) Bounds() gamemath.Rect {
	cr := s.occupied()
	if cr.empty() {
		return gamemath.Rect{}
	}
	tl := s.CellBounds(cr.left, cr.top)
	br := s.CellBounds(cr.right, cr.bottom)
	return gamemath.Rect{Left: tl.Left, Top: tl.Top, Right: br.Right, Bottom: br.Bottom}
}
