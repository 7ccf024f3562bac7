package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/caldera/brush"
	"github.com/pthm-cable/caldera/config"
)

// handleInput processes keyboard and mouse input for one frame.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyT) {
		g.overlayVisible = !g.overlayVisible
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyF5) {
		if err := g.Save(QuicksaveName); err != nil {
			Logf("quicksave failed: %v", err)
		} else {
			Logf("saved %q", QuicksaveName)
		}
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		if err := g.Load(QuicksaveName); err != nil {
			Logf("quickload failed: %v", err)
		} else {
			Logf("loaded %q", QuicksaveName)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := g.Reset(); err != nil {
			Logf("reset failed: %v", err)
		}
	}

	g.handleBrushInput()
	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h

	if g.cam != nil {
		g.cam.Resize(w, h)
	}
}

// handleBrushInput resizes the brush with the mouse wheel and applies paint
// while a button is held. Painting is suppressed over the control panel.
func (g *Game) handleBrushInput() {
	cfg := config.Cfg()

	wheel := rl.GetMouseWheelMove()
	if wheel > 0 && g.brushRadius < cfg.Brush.MaxRadius {
		g.brushRadius++
	}
	if wheel < 0 && g.brushRadius > cfg.Brush.MinRadius {
		g.brushRadius--
	}

	mouse := rl.GetMousePosition()
	if g.panel.ContainsPoint(mouse.X, mouse.Y) {
		return
	}

	warm := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	cool := rl.IsMouseButtonDown(rl.MouseButtonRight)
	if !warm && !cool {
		return
	}

	cx, cy, ok := g.hoveredCell(mouse.X, mouse.Y)
	if !ok {
		return
	}
	g.paint(cx, cy, cool)
}

// paint applies one brush application centered at the given cell. Cool
// selects the decreasing step.
func (g *Game) paint(cx, cy int, cool bool) {
	cells := brush.Cells(cx, cy, g.brushRadius)
	for _, c := range cells {
		g.thermal.Adjust(c.X, c.Y, cool)
	}
	g.collector.RecordPaint(len(cells))
}

// hoveredCell maps a screen position to grid coordinates. ok is false when
// the cursor is outside the grid.
func (g *Game) hoveredCell(sx, sy float32) (cx, cy int, ok bool) {
	wx, wy := g.cam.ScreenToWorld(sx, sy)
	if wx < 0 || wy < 0 {
		return 0, 0, false
	}
	cx = int(wx / g.cellSize)
	cy = int(wy / g.cellSize)
	if cx >= g.gridW || cy >= g.gridH {
		return 0, 0, false
	}
	return cx, cy, true
}

// handleCameraInput processes camera pan/zoom controls. The mouse wheel is
// reserved for the brush, so zoom lives on the keyboard.
func (g *Game) handleCameraInput() {
	if g.cam == nil {
		return
	}

	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.cam.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, -panSpeed)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
	}
}
