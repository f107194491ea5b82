// Package desktop implements the platform services the hauntings act on,
// using Wails windows and dialogs and robotgo for the cursor.
package desktop

import (
	"log/slog"

	"github.com/go-vgo/robotgo"
	"github.com/wailsapp/wails/v3/pkg/application"

	"go.aimuz.me/haunt/internal/types"
)

// Desktop drives the main window, the ghost overlay and the system cursor.
type Desktop struct {
	app     *application.App
	main    application.Window
	overlay application.Window
}

// New returns a Desktop for the given windows.
func New(app *application.App, main, overlay application.Window) *Desktop {
	return &Desktop{app: app, main: main, overlay: overlay}
}

// ScreenSize returns the primary display size.
func (d *Desktop) ScreenSize() types.Size {
	w, h := robotgo.GetScreenSize()
	return types.Size{Width: w, Height: h}
}

func (d *Desktop) SetOpacity(opacity float64) {
	d.main.ExecJS(setOpacityJS(opacity))
}

func (d *Desktop) SetStatus(text string) {
	d.main.ExecJS(setTextJS(text))
}

func (d *Desktop) MoveCursor(p types.Point) {
	robotgo.Move(p.X, p.Y)
}

// ShowMessage opens a warning dialog without waiting for it to be dismissed.
func (d *Desktop) ShowMessage(title, message string) {
	if d.app == nil {
		slog.Warn("no application for dialog", "message", message)
		return
	}
	dialog := d.app.Dialog.Warning().
		SetTitle(title).
		SetMessage(message)
	go dialog.Show()
}

func (d *Desktop) ShowOverlay(p types.Point) {
	d.overlay.SetPosition(p.X, p.Y)
	d.overlay.Show()
}

func (d *Desktop) SetOverlayText(text string) {
	d.overlay.ExecJS(setTextJS(text))
}

func (d *Desktop) SetOverlayOpacity(opacity float64) {
	d.overlay.ExecJS(setOpacityJS(opacity))
}

func (d *Desktop) HideOverlay() {
	d.overlay.Hide()
}
