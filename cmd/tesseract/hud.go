package main

import (
	"fmt"
	"time"
)

// HUD renders an overlay with scene info and controls
type HUD struct {
	title     string
	edgeCount int
	dimension int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD(title string, edgeCount, dimension int) *HUD {
	return &HUD{
		title:     title,
		edgeCount: edgeCount,
		dimension: dimension,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Caption returns the one-line description used for snapshots.
func (h *HUD) Caption(plane string) string {
	if plane == "" {
		return fmt.Sprintf("%s  %dD  %d edges", h.title, h.dimension, h.edgeCount)
	}
	return fmt.Sprintf("%s  %dD  %d edges  %s plane", h.title, h.dimension, h.edgeCount, plane)
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, viewState *ViewState, plane, rotation string) {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	// Helper to position cursor
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !viewState.ShowHUD {
		return
	}

	// Top left: FPS
	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top middle: title
	titleStr := fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.title, reset)
	titleCol := max((width-len(h.title)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + titleStr)

	// Top right: dimension and edge count
	countStr := fmt.Sprintf("%dD %d edges", h.dimension, h.edgeCount)
	countCol := max(width-len(countStr)-1, 1)
	fmt.Print(moveTo(1, countCol) + fmt.Sprintf("%s%s%s %s %s", bgBlack, fgCyan, bold, countStr, reset))

	// Bottom left: active hyper plane and current rotation
	bottom := rotation
	if plane != "" {
		bottom = fmt.Sprintf("J/L: %s  %s", plane, rotation)
	}
	fmt.Print(moveTo(height, 1) + fmt.Sprintf("%s%s %s %s", bgBlack, fgWhite, bottom, reset))

	// Bottom right: status or hint
	hint := viewState.Status
	if hint == "" {
		hint = "O: axis snap  E: euler snap  P: snapshot"
	}
	hintCol := max(width-len(hint)-1, 1)
	fmt.Print(moveTo(height, hintCol) + fmt.Sprintf("%s%s%s %s %s", bgBlack, dim, fgYellow, hint, reset))
}
