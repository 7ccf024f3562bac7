package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanelState is the panel's input and output for one frame.
type PanelState struct {
	BrushRadius int
	MinRadius   int
	MaxRadius   int

	// Actions requested this frame
	SaveClicked  bool
	LoadClicked  bool
	ResetClicked bool
}

// ControlPanel is the raygui side panel with the brush slider and the
// save/load/reset buttons.
type ControlPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlPanel creates a panel anchored at (x, y).
func NewControlPanel(x, y, width float32) *ControlPanel {
	return &ControlPanel{x: x, y: y, width: width, visible: true}
}

// Toggle switches panel visibility.
func (p *ControlPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// ContainsPoint reports whether (x, y) lies inside the drawn panel, so the
// game can suppress painting while the cursor is over the UI.
func (p *ControlPanel) ContainsPoint(x, y float32) bool {
	if !p.visible {
		return false
	}
	return x >= p.x && x <= p.x+p.width && y >= p.y && y <= p.y+150
}

// Draw renders the panel and mutates state with this frame's interactions.
func (p *ControlPanel) Draw(state *PanelState) {
	if !p.visible {
		return
	}

	x, y := p.x, p.y
	rl.DrawRectangle(int32(x)-8, int32(y)-8, int32(p.width)+16, 158, rl.Color{R: 20, G: 20, B: 30, A: 200})

	rl.DrawText("Brush radius", int32(x), int32(y), 14, rl.Gray)
	y += 18
	radius := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: p.width - 40, Height: 20},
		fmt.Sprintf("%d", state.MinRadius), fmt.Sprintf("%d", state.MaxRadius),
		float32(state.BrushRadius), float32(state.MinRadius), float32(state.MaxRadius),
	)
	rl.DrawText(fmt.Sprintf("%d", state.BrushRadius), int32(x+p.width-30), int32(y+2), 16, rl.White)
	state.BrushRadius = int(radius + 0.5)
	y += 32

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: p.width, Height: 26}, "Save (F5)") {
		state.SaveClicked = true
	}
	y += 32
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: p.width, Height: 26}, "Load (F9)") {
		state.LoadClicked = true
	}
	y += 32
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: p.width, Height: 26}, "Reset field (R)") {
		state.ResetClicked = true
	}
}
