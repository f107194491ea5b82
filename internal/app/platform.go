package app

import "go.aimuz.me/haunt/internal/types"

// Platform is the set of desktop services the handlers act on.
// Implementations must be safe to call from the UI loop goroutine.
type Platform interface {
	ScreenSize() types.Size

	// Main window.
	SetOpacity(opacity float64)
	SetStatus(text string)

	MoveCursor(p types.Point)
	ShowMessage(title, message string)

	// Ghost overlay.
	ShowOverlay(p types.Point)
	SetOverlayText(text string)
	SetOverlayOpacity(opacity float64)
	HideOverlay()
}
