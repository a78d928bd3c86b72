package view

import (
	"fmt"

	"github.com/zafahi/tralashop/internal/core/port"
)

var _ port.ToastTarget = (*Toast)(nil)

// Toast is the notifier's display target: one message at a time, severity
// carried as a class on the toast container.
type Toast struct {
	surface port.RenderSurface
}

func NewToast(surface port.RenderSurface) *Toast {
	return &Toast{surface: surface}
}

func (t *Toast) ShowToast(message, severity string) {
	t.surface.SetContent(ToastID, fmt.Sprintf(
		`<div class="toast-content %s"><span class="toast-message">%s</span></div>`,
		severity, message))
	t.surface.AddClass(ToastID, "show")
}

func (t *Toast) HideToast() {
	t.surface.RemoveClass(ToastID, "show")
}
