package render

import (
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/component"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/vmath"
)

// SpriteSource resolves decoded sprites by handle
type SpriteSource interface {
	Sprite(h asset.Handle) (*asset.Sprite, bool)
}

// TerminalRenderer draws sprite entities onto a tcell screen
// The bottom row is reserved for the status line when enabled
type TerminalRenderer struct {
	screen  tcell.Screen
	sprites SpriteSource
	reg     *status.Registry

	viewport   Viewport
	showStatus bool

	statFrames *atomic.Int64
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, sprites SpriteSource, reg *status.Registry, showStatus bool) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:     screen,
		sprites:    sprites,
		reg:        reg,
		showStatus: showStatus && reg != nil,
	}
	if reg != nil {
		r.statFrames = reg.Ints.Get(status.KeyFrames)
	}
	r.Resize()
	return r
}

// Resize refits the viewport to the screen; call after a resize event
func (r *TerminalRenderer) Resize() Viewport {
	w, h := r.screen.Size()
	if r.showStatus {
		h--
	}
	r.viewport = NewViewport(w, h)
	return r.viewport
}

// Viewport returns the current world-to-cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(world *engine.World, paused bool) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	sprites := world.Components.Sprite
	for _, e := range sprites.GetAllEntities() {
		sc, ok := sprites.GetComponent(e)
		if !ok {
			continue
		}
		spr, ok := r.sprites.Sprite(sc.Handle)
		if !ok {
			continue
		}
		pos, ok := WorldPosition(world, e)
		if !ok {
			continue
		}
		var rotation float64
		if tr, ok := world.Components.Transform.GetComponent(e); ok {
			rotation = tr.Rotation
		}
		r.drawSprite(spr, sc, pos, rotation, r.styleFor(world, e, rotation, defaultStyle))
	}

	if paused {
		r.drawPaused(defaultStyle)
	}
	if r.showStatus {
		r.drawStatus(defaultStyle)
	}

	r.screen.Show()
	if r.statFrames != nil {
		r.statFrames.Add(1)
	}
}

func (r *TerminalRenderer) styleFor(world *engine.World, e core.Entity, rotation float64, base tcell.Style) tcell.Style {
	if world.Components.Player.HasEntity(rootOf(world, e)) {
		return base.Foreground(GetPlayerColor(rotation)).Bold(true)
	}
	// Caps hang directly off the obstacle; segments hang off a cap
	if m, ok := world.Components.Member.GetComponent(e); ok && !world.Components.Kinetic.HasEntity(m.Parent) {
		return base.Foreground(RgbPipeDark)
	}
	return base.Foreground(RgbPipe)
}

// drawSprite samples the sprite for each cell inside the rotated footprint, nearest neighbor
func (r *TerminalRenderer) drawSprite(spr *asset.Sprite, sc component.SpriteComponent, pos vmath.Vec3, rotation float64, style tcell.Style) {
	w, h := sc.Size.X, sc.Size.Y
	if w <= 0 || h <= 0 || spr.Width == 0 || spr.Height == 0 {
		return
	}

	cos, sin := math.Abs(math.Cos(rotation)), math.Abs(math.Sin(rotation))
	halfW := (w*cos + h*sin) / 2
	halfH := (w*sin + h*cos) / 2

	vp := r.viewport
	c0, r0 := vp.ToCell(vmath.Vec3{X: pos.X - halfW, Y: pos.Y + halfH})
	c1, r1 := vp.ToCell(vmath.Vec3{X: pos.X + halfW, Y: pos.Y - halfH})
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, vp.Cols-1), min(r1, vp.Rows-1)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			local := vmath.V3RotateZ(vmath.V3Sub(vp.CellCenter(col, row), pos), -rotation)
			u := (local.X + w/2) / w
			v := (h/2 - local.Y) / h
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}

			sx := int(u * float64(spr.Width))
			sy := int(v * float64(spr.Height))
			if sc.FlipY {
				sy = spr.Height - 1 - sy
			}
			ch := spr.At(sx, sy)
			if ch == asset.Transparent {
				continue
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawPaused(base tcell.Style) {
	const text = "PAUSED"
	col := (r.viewport.Cols - len(text)) / 2
	r.drawText(max(col, 0), r.viewport.Rows/2, text, base.Foreground(RgbPaused).Bold(true))
}

func (r *TerminalRenderer) drawStatus(base tcell.Style) {
	r.drawText(0, r.viewport.Rows, r.reg.Summary(), base.Foreground(RgbStatusBar))
}

// drawText writes a single line, clipped at the screen edge
func (r *TerminalRenderer) drawText(col, row int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if col >= width {
			return
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
