package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/caldera/camera"
	"github.com/pthm-cable/caldera/config"
	"github.com/pthm-cable/caldera/creatures"
	"github.com/pthm-cable/caldera/telemetry"
	"github.com/pthm-cable/caldera/thermal"
	"github.com/pthm-cable/caldera/ui"
)

// worldSurface adapts raylib to the thermal.Surface contract, translating
// world-space rectangles through the camera.
type worldSurface struct {
	cam   *camera.Camera
	alpha float32
}

func newWorldSurface(cam *camera.Camera) *worldSurface {
	return &worldSurface{cam: cam, alpha: 1.0}
}

// SetAlpha sets the opacity for subsequent fills.
func (s *worldSurface) SetAlpha(alpha float32) {
	s.alpha = alpha
}

// FillRect fills a world-space rectangle. Rectangles fully off screen are
// skipped.
func (s *worldSurface) FillRect(x, y, w, h float32, c thermal.Color) {
	sx, sy := s.cam.WorldToScreen(x, y)
	sw := w * s.cam.Zoom
	sh := h * s.cam.Zoom

	if sx+sw < 0 || sy+sh < 0 || sx > s.cam.ViewportW || sy > s.cam.ViewportH {
		return
	}

	// +1 pixel closes the seams between adjacent cells at fractional zoom
	rl.DrawRectangle(int32(sx), int32(sy), int32(sw)+1, int32(sh)+1,
		rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(s.alpha * 255)})
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 15, G: 15, B: 20, A: 255})

	g.drawGrid()
	g.thermal.Render(newWorldSurface(g.cam), g.cellSize, g.overlayVisible)
	g.drawCreatures()
	g.drawBrushOutline()
	g.drawHUD()

	rl.EndDrawing()
}

// drawGrid draws the cell grid lines under the overlay.
func (g *Game) drawGrid() {
	lineColor := rl.Color{R: 40, G: 40, B: 50, A: 255}
	worldW := float32(g.gridW) * g.cellSize
	worldH := float32(g.gridH) * g.cellSize

	for x := 0; x <= g.gridW; x++ {
		wx := float32(x) * g.cellSize
		x0, y0 := g.cam.WorldToScreen(wx, 0)
		_, y1 := g.cam.WorldToScreen(wx, worldH)
		rl.DrawLine(int32(x0), int32(y0), int32(x0), int32(y1), lineColor)
	}
	for y := 0; y <= g.gridH; y++ {
		wy := float32(y) * g.cellSize
		x0, y0 := g.cam.WorldToScreen(0, wy)
		x1, _ := g.cam.WorldToScreen(worldW, wy)
		rl.DrawLine(int32(x0), int32(y0), int32(x1), int32(y0), lineColor)
	}
}

// drawCreatures renders each living creature as a dot whose brightness
// follows its energy reserve.
func (g *Game) drawCreatures() {
	g.creatures.Each(func(pos creatures.Position, vitals creatures.Vitals) {
		if !g.cam.IsVisible(pos.X, pos.Y, g.cellSize) {
			return
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)

		bright := vitals.Energy / 100.0
		if bright > 1 {
			bright = 1
		}
		if bright < 0.2 {
			bright = 0.2
		}
		c := rl.Color{R: uint8(230 * bright), G: uint8(230 * bright), B: 255, A: 255}
		radius := 3 * g.cam.Zoom
		if radius < 1.5 {
			radius = 1.5
		}
		rl.DrawCircle(int32(sx), int32(sy), radius, c)
	})
}

// drawBrushOutline draws the brush disk outline at the hovered cell.
func (g *Game) drawBrushOutline() {
	mouse := rl.GetMousePosition()
	if g.panel.ContainsPoint(mouse.X, mouse.Y) {
		return
	}
	cx, cy, ok := g.hoveredCell(mouse.X, mouse.Y)
	if !ok {
		return
	}

	wx := (float32(cx) + 0.5) * g.cellSize
	wy := (float32(cy) + 0.5) * g.cellSize
	sx, sy := g.cam.WorldToScreen(wx, wy)
	radius := (float32(g.brushRadius) + 0.5) * g.cellSize * g.cam.Zoom
	rl.DrawCircleLines(int32(sx), int32(sy), radius, rl.Color{R: 255, G: 255, B: 255, A: 150})
}

// drawHUD renders the text HUD, the hover tooltip, and the control panel,
// then applies any panel interactions.
func (g *Game) drawHUD() {
	mouse := rl.GetMousePosition()

	data := ui.HUDData{
		Title:          "Caldera",
		Tick:           g.tick,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		OverlayVisible: g.overlayVisible,
		BrushRadius:    g.brushRadius,
		CreatureCount:  g.creatures.Count(),
		MeanTemp:       telemetry.ComputeFieldStats(g.thermal.Cells()).Mean,
		HoverX:         -1,
		ScreenWidth:    int32(g.screenW),
		ScreenHeight:   int32(g.screenH),
	}
	if cx, cy, ok := g.hoveredCell(mouse.X, mouse.Y); ok {
		data.HoverX = cx
		data.HoverY = cy
		data.HoverTemp = g.thermal.Temperature(cx, cy)
	}

	g.hud.Draw(data)
	g.hud.DrawControls(int32(g.screenW), int32(g.screenH))
	g.hud.DrawTooltip(data, int32(mouse.X), int32(mouse.Y))

	cfg := config.Cfg()
	state := ui.PanelState{
		BrushRadius: g.brushRadius,
		MinRadius:   cfg.Brush.MinRadius,
		MaxRadius:   cfg.Brush.MaxRadius,
	}
	g.panel.Draw(&state)
	g.brushRadius = state.BrushRadius

	if state.SaveClicked {
		if err := g.Save(QuicksaveName); err != nil {
			Logf("save failed: %v", err)
		}
	}
	if state.LoadClicked {
		if err := g.Load(QuicksaveName); err != nil {
			Logf("load failed: %v", err)
		}
	}
	if state.ResetClicked {
		if err := g.Reset(); err != nil {
			Logf("reset failed: %v", err)
		}
	}
}
