// Package ui renders the heads-up display and the control panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title          string
	Tick           int64
	FPS            int32
	Paused         bool
	OverlayVisible bool
	BrushRadius    int
	CreatureCount  int
	MeanTemp       float64

	// Hovered cell, or HoverX < 0 when the cursor is off-grid
	HoverX, HoverY int
	HoverTemp      float64

	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD text block.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Mean: %.1f°C | Creatures: %d",
			data.Tick, data.FPS, data.MeanTemp, data.CreatureCount),
		10, 35, 16, rl.LightGray,
	)

	overlay := "on"
	if !data.OverlayVisible {
		overlay = "off"
	}
	rl.DrawText(
		fmt.Sprintf("Brush: r=%d | Overlay: %s", data.BrushRadius, overlay),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawTooltip renders the hovered cell's temperature near the cursor.
func (h *HUD) DrawTooltip(data HUDData, mouseX, mouseY int32) {
	if data.HoverX < 0 {
		return
	}

	text := fmt.Sprintf("(%d, %d) %.1f°C", data.HoverX, data.HoverY, data.HoverTemp)
	w := rl.MeasureText(text, 14)

	x := mouseX + 14
	y := mouseY + 14
	if x+w+8 > data.ScreenWidth {
		x = data.ScreenWidth - w - 8
	}

	rl.DrawRectangle(x-4, y-2, w+8, 18, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawText(text, x, y, 14, rl.White)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32) {
	controls := "LMB warm | RMB cool | Wheel brush | T overlay | Space pause | F5 save | F9 load | R reset"
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
