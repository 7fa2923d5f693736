package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/automoto/hitgrid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// viewport maps world coordinates to the screen.
type viewport struct {
	offX, offY float64
	world      gamemath.Rect
}

func newViewport(ecs *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	x := camera.Position.X + camera.Shake.X - width/2
	y := camera.Position.Y + camera.Shake.Y - height/2
	return viewport{
		offX:  -x,
		offY:  -y,
		world: gamemath.RectFrom(fixed.FromFloat(x), fixed.FromFloat(y), fixed.FromFloat(width), fixed.FromFloat(height)),
	}, true
}

func (v viewport) point(p gamemath.Vector) (float32, float32) {
	return float32(p.X.Float() + v.offX), float32(p.Y.Float() + v.offY)
}

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
}

// DrawDebug draws the grid cells, every hitbox on screen and the contacts
// of the last tick.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	sandbox := GetOrCreateSandbox(ecs)
	space := spaceOf(ecs)
	if space == nil {
		return
	}
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	if sandbox.ShowCells {
		for _, cell := range space.OccupiedCells(view.world) {
			x, y := view.point(gamemath.Vector{X: cell.Left, Y: cell.Top})
			vector.StrokeRect(screen, x, y, float32(cell.Width().Float()), float32(cell.Height().Float()), 1, cfg.Colors.Cell, false)
		}
	}

	bodies := space.LocatorsMeeting(view.world, nil)

	if sandbox.ShowHitboxes {
		for _, body := range bodies {
			drawHitboxTree(screen, view, body.Locator())
		}
	}

	if sandbox.ShowContacts {
		for _, body := range bodies {
			for _, c := range body.Contacts() {
				drawContact(screen, view, body, c)
			}
		}
	}
}

func drawHitboxTree(screen *ebiten.Image, view viewport, h *collision.Hitbox) {
	if clr, ok := roleColor(h.Roles()); ok {
		drawHitbox(screen, view, h, clr)
		if h.HasRole(collision.RoleSolid) {
			drawSurfaces(screen, view, h)
		}
	}
	for _, child := range h.Children() {
		drawHitboxTree(screen, view, child)
	}
}

// roleColor picks one color for a hitbox serving several roles.
func roleColor(r collision.Role) (color.RGBA, bool) {
	switch {
	case r&collision.RoleSolid != 0:
		return cfg.Colors.Solid, true
	case r&collision.RoleCollision != 0:
		return cfg.Colors.Collision, true
	case r&collision.RoleOverlap != 0:
		return cfg.Colors.Overlap, true
	case r&(collision.RoleLocator|collision.RoleCenter) != 0:
		return cfg.Colors.Locator, true
	}
	return color.RGBA{}, false
}

func drawHitbox(screen *ebiten.Image, view viewport, h *collision.Hitbox, clr color.RGBA) {
	switch h.Kind() {
	case collision.KindPoint:
		x, y := view.point(h.AbsolutePosition())
		vector.StrokeLine(screen, x-2, y, x+2, y, 1, clr, false)
		vector.StrokeLine(screen, x, y-2, x, y+2, 1, clr, false)
	case collision.KindCircle:
		x, y := view.point(h.AbsolutePosition())
		vector.StrokeCircle(screen, x, y, float32(h.Radius().Float()), 1, clr, true)
	case collision.KindLine, collision.KindPolygon:
		verts := h.Vertices()
		for i := range verts {
			if h.Kind() == collision.KindLine && i == len(verts)-1 {
				break
			}
			x0, y0 := view.point(verts[i])
			x1, y1 := view.point(verts[(i+1)%len(verts)])
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
		}
	case collision.KindRectangle:
		b := h.Bounds()
		x, y := view.point(gamemath.Vector{X: b.Left, Y: b.Top})
		vector.StrokeRect(screen, x, y, float32(b.Width().Float()), float32(b.Height().Float()), 1, clr, false)
	case collision.KindComposite:
		for _, c := range h.Components() {
			drawHitbox(screen, view, c, clr)
		}
	}
}

// drawSurfaces thickens the solid sides of a hitbox's bounding box.
func drawSurfaces(screen *ebiten.Image, view viewport, h *collision.Hitbox) {
	b := h.Bounds()
	left, top := view.point(gamemath.Vector{X: b.Left, Y: b.Top})
	right, bottom := view.point(gamemath.Vector{X: b.Right, Y: b.Bottom})
	clr := cfg.Colors.Solid
	s := h.Surfaces()
	if s.Has(collision.DirUp) {
		vector.StrokeLine(screen, left, top, right, top, 3, clr, false)
	}
	if s.Has(collision.DirDown) {
		vector.StrokeLine(screen, left, bottom, right, bottom, 3, clr, false)
	}
	if s.Has(collision.DirLeft) {
		vector.StrokeLine(screen, left, top, left, bottom, 3, clr, false)
	}
	if s.Has(collision.DirRight) {
		vector.StrokeLine(screen, right, top, right, bottom, 3, clr, false)
	}
}

// drawContact marks the side of body a contact happened on.
func drawContact(screen *ebiten.Image, view viewport, body *collision.Body, c collision.Contact) {
	box := body.CollisionHitbox()
	if box == nil {
		box = body.Locator()
	}
	b := box.Bounds()
	mid := b.Center()
	switch {
	case c.Dir.Has(collision.DirLeft):
		mid.X = b.Left
	case c.Dir.Has(collision.DirRight):
		mid.X = b.Right
	case c.Dir.Has(collision.DirUp):
		mid.Y = b.Top
	case c.Dir.Has(collision.DirDown):
		mid.Y = b.Bottom
	}
	x, y := view.point(mid)
	r := float32(3)
	if c.Pushed {
		r = 5
	}
	vector.FillCircle(screen, x, y, r, cfg.Colors.Contact, true)
}

// DrawHUD prints the simulation state in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sandbox := GetOrCreateSandbox(ecs)
	space := spaceOf(ecs)
	if space == nil {
		return
	}

	state := "running"
	if sandbox.Paused {
		state = "paused"
	}
	stats := space.Stats()
	text := fmt.Sprintf("tick %d  %s  x%.2f\nbodies %d  cells %d  inserts %d  removals %d",
		sandbox.Ticks, state, timeFactorOf(sandbox).Float(),
		space.Len(), stats.Cells, stats.Inserts, stats.Removals)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			text += "\nlevel " + level.Name
		}
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		body := components.Body.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		motion := components.Motion.Get(playerEntry)
		text += fmt.Sprintf("\npos %v  vel %v\nground %t  pressed from %v  respawns %d",
			body.Position(), body.Velocity(), motion.OnGround, body.PressedFrom(), player.Respawns)
		for _, c := range body.Contacts() {
			other := "?"
			if len(c.Other.Tags) > 0 {
				other = c.Other.Tags[0]
			}
			text += fmt.Sprintf("\n  %v %s %v", c.Dir, other, c.Response)
		}
	}

	ebitenutil.DebugPrintAt(screen, text, 4, 4)
}
