package collision

import (
	"sort"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

type cellKey struct{ x, y int }

// cellRange is an inclusive range of cell coordinates.
type cellRange struct {
	left, top, right, bottom int
}

func (r cellRange) empty() bool { return r.left > r.right || r.top > r.bottom }

func (r cellRange) intersect(o cellRange) cellRange {
	return cellRange{
		left:   max(r.left, o.left),
		top:    max(r.top, o.top),
		right:  min(r.right, o.right),
		bottom: min(r.bottom, o.bottom),
	}
}

type hitboxSet map[*Hitbox]struct{}

// cell holds, per role, the hitboxes whose bounding box touches it. Solid
// hitboxes are also filed under each of their solid sides.
type cell struct {
	roles  [numRoles]hitboxSet
	solids [4]hitboxSet
	count  int
}

func (c *cell) add(h *Hitbox, r Role) {
	i := r.index()
	if c.roles[i] == nil {
		c.roles[i] = make(hitboxSet)
	}
	c.roles[i][h] = struct{}{}
	c.count++
	if r == RoleSolid {
		c.addSides(h, h.surfaces)
	}
}

func (c *cell) remove(h *Hitbox, r Role) {
	i := r.index()
	if _, ok := c.roles[i][h]; !ok {
		return
	}
	delete(c.roles[i], h)
	c.count--
	if r == RoleSolid {
		c.removeSides(h, DirAll)
	}
}

func (c *cell) addSides(h *Hitbox, d Direction) {
	for i, side := range sides {
		if d&side == 0 {
			continue
		}
		if c.solids[i] == nil {
			c.solids[i] = make(hitboxSet)
		}
		c.solids[i][h] = struct{}{}
	}
}

func (c *cell) removeSides(h *Hitbox, d Direction) {
	for i, side := range sides {
		if d&side != 0 {
			delete(c.solids[i], h)
		}
	}
}

// cellRangeInclusive covers every cell the rectangle touches, edges
// included. It is used to file hitboxes.
func (s *Space) cellRangeInclusive(r gamemath.Rect) cellRange {
	return cellRange{
		left:   fixed.FloorDiv(r.Left, s.cellW),
		top:    fixed.FloorDiv(r.Top, s.cellH),
		right:  fixed.FloorDiv(r.Right, s.cellW),
		bottom: fixed.FloorDiv(r.Bottom, s.cellH),
	}
}

// cellRangeExclusive is used for queries. A leading edge that sits exactly
// on a cell boundary widens the range to the previous cell, so hitboxes
// abutting the region are still candidates.
func (s *Space) cellRangeExclusive(r gamemath.Rect) cellRange {
	return cellRange{
		left:   fixed.CeilDiv(r.Left, s.cellW) - 1,
		top:    fixed.CeilDiv(r.Top, s.cellH) - 1,
		right:  fixed.FloorDiv(r.Right, s.cellW),
		bottom: fixed.FloorDiv(r.Bottom, s.cellH),
	}
}

// CellBounds returns the area covered by the cell at (x, y).
func (s *Space) CellBounds(x, y int) gamemath.Rect {
	left := fixed.F(x) * s.cellW
	top := fixed.F(y) * s.cellH
	return gamemath.Rect{Left: left, Top: top, Right: left + s.cellW, Bottom: top + s.cellH}
}

// --- role bookkeeping ---

func (s *Space) addToRole(h *Hitbox, r Role) {
	if h.gridRoles&r != 0 {
		return
	}
	if h.gridRoles == 0 {
		h.cells = s.cellRangeInclusive(h.bounds)
	}
	h.gridRoles |= r
	s.fileRange(h, r, h.cells)
}

func (s *Space) removeFromRole(h *Hitbox, r Role) {
	if h.gridRoles&r == 0 {
		return
	}
	s.unfileRange(h, r, h.cells)
	h.gridRoles &^= r
	if h.gridRoles == 0 {
		h.cells = cellRange{}
	}
}

// onBoundsChanged moves h between cells when its cell range changed.
func (s *Space) onBoundsChanged(h *Hitbox) {
	if h.gridRoles == 0 {
		return
	}
	nr := s.cellRangeInclusive(h.bounds)
	if nr == h.cells {
		return
	}
	for _, r := range allRoles {
		if h.gridRoles&r != 0 {
			s.unfileRange(h, r, h.cells)
		}
	}
	h.cells = nr
	for _, r := range allRoles {
		if h.gridRoles&r != 0 {
			s.fileRange(h, r, h.cells)
		}
	}
}

func (s *Space) surfacesChanged(h *Hitbox, old Direction) {
	added := h.surfaces &^ old
	removed := old &^ h.surfaces
	cr := h.cells
	for y := cr.top; y <= cr.bottom; y++ {
		for x := cr.left; x <= cr.right; x++ {
			c := s.cells[cellKey{x, y}]
			if c == nil {
				continue
			}
			c.removeSides(h, removed)
			c.addSides(h, added)
		}
	}
}

func (s *Space) fileRange(h *Hitbox, r Role, cr cellRange) {
	for y := cr.top; y <= cr.bottom; y++ {
		for x := cr.left; x <= cr.right; x++ {
			s.cellAt(x, y).add(h, r)
			s.inserts++
		}
	}
}

func (s *Space) unfileRange(h *Hitbox, r Role, cr cellRange) {
	for y := cr.top; y <= cr.bottom; y++ {
		for x := cr.left; x <= cr.right; x++ {
			k := cellKey{x, y}
			c := s.cells[k]
			if c == nil {
				continue
			}
			c.remove(h, r)
			s.removals++
			if c.count == 0 {
				delete(s.cells, k)
				s.boundsDirty = true
			}
		}
	}
}

// cellAt returns the cell at (x, y), creating it and growing the tracked
// bounds if needed.
func (s *Space) cellAt(x, y int) *cell {
	k := cellKey{x, y}
	if c, ok := s.cells[k]; ok {
		return c
	}
	c := &cell{}
	s.cells[k] = c
	if len(s.cells) == 1 {
		s.bounds = cellRange{x, y, x, y}
		s.boundsDirty = false
	} else if !s.boundsDirty {
		s.bounds.left = min(s.bounds.left, x)
		s.bounds.top = min(s.bounds.top, y)
		s.bounds.right = max(s.bounds.right, x)
		s.bounds.bottom = max(s.bounds.bottom, y)
	}
	return c
}

// occupied returns the inclusive range of non-empty cells.
func (s *Space) occupied() cellRange {
	if len(s.cells) == 0 {
		return cellRange{0, 0, -1, -1}
	}
	if s.boundsDirty {
		first := true
		for k := range s.cells {
			if first {
				s.bounds = cellRange{k.x, k.y, k.x, k.y}
				first = false
				continue
			}
			s.bounds.left = min(s.bounds.left, k.x)
			s.bounds.top = min(s.bounds.top, k.y)
			s.bounds.right = max(s.bounds.right, k.x)
			s.bounds.bottom = max(s.bounds.bottom, k.y)
		}
		s.boundsDirty = false
	}
	return s.bounds
}

// forEachCell visits the existing cells of cr in row order. Parts of cr
// outside the occupied bounds are skipped.
func (s *Space) forEachCell(cr cellRange, fn func(c *cell)) {
	cr = cr.intersect(s.occupied())
	if cr.empty() {
		return
	}
	for y := cr.top; y <= cr.bottom; y++ {
		for x := cr.left; x <= cr.right; x++ {
			if c := s.cells[cellKey{x, y}]; c != nil {
				fn(c)
			}
		}
	}
}

// --- scans ---

func (s *Space) acquireScanSet() hitboxSet {
	if n := len(s.scanPool); n > 0 {
		set := s.scanPool[n-1]
		s.scanPool = s.scanPool[:n-1]
		return set
	}
	return make(hitboxSet)
}

func (s *Space) releaseScanSet(set hitboxSet) {
	clear(set)
	s.scanPool = append(s.scanPool, set)
}

// collect returns the distinct hitboxes filed under role r in cr, ordered
// by id.
func (s *Space) collect(cr cellRange, r Role) []*Hitbox {
	i := r.index()
	return s.collectSets(cr, func(c *cell) hitboxSet { return c.roles[i] })
}

// collectSolids returns the distinct solid hitboxes in cr with the given
// side solid, ordered by id.
func (s *Space) collectSolids(cr cellRange, side Direction) []*Hitbox {
	i := side.index()
	return s.collectSets(cr, func(c *cell) hitboxSet { return c.solids[i] })
}

func (s *Space) collectSets(cr cellRange, pick func(c *cell) hitboxSet) []*Hitbox {
	seen := s.acquireScanSet()
	defer s.releaseScanSet(seen)

	var out []*Hitbox
	s.forEachCell(cr, func(c *cell) {
		for h := range pick(c) {
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, h)
		}
	})
	sortHitboxes(out)
	return out
}

func sortHitboxes(list []*Hitbox) {
	sort.Slice(list, func(i, j int) bool { return list[i].id < list[j].id })
}

// GridStats describes the state of the broad phase.
type GridStats struct {
	Cells    int
	Inserts  uint64
	Removals uint64
}

// Stats returns cell counts and the number of cell insertions and removals
// performed so far.
func (s *Space) Stats() GridStats {
	return GridStats{Cells: len(s.cells), Inserts: s.inserts, Removals: s.removals}
}

// OccupiedCells returns the bounds of every non-empty cell touching area,
// in row order.
func (s *Space) OccupiedCells(area gamemath.Rect) []gamemath.Rect {
	var out []gamemath.Rect
	cr := s.cellRangeExclusive(area).intersect(s.occupied())
	for y := cr.top; y <= cr.bottom; y++ {
		for x := cr.left; x <= cr.right; x++ {
			if _, ok := s.cells[cellKey{x, y}]; ok {
				out = append(out, s.CellBounds(x, y))
			}
		}
	}
	return out
}
