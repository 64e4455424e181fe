//go:build !ebiten

package ui

import "github.com/Hunterosmun/conways-game/internal/core"

// HUDHeight matches the GUI build so layout math is shared.
const HUDHeight = 36

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Engine) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
