package view_test

import (
	"github.com/zafahi/tralashop/internal/core/port"
)

var _ port.RenderSurface = (*surfaceRecorder)(nil)

// surfaceRecorder captures everything the views write, keyed by container id.
type surfaceRecorder struct {
	content map[string]string
	text    map[string]string
	classes map[string]map[string]bool
}

func newSurfaceRecorder() *surfaceRecorder {
	return &surfaceRecorder{
		content: make(map[string]string),
		text:    make(map[string]string),
		classes: make(map[string]map[string]bool),
	}
}

func (r *surfaceRecorder) SetContent(id, markup string) {
	r.content[id] = markup
}

func (r *surfaceRecorder) SetText(id, text string) {
	r.text[id] = text
}

func (r *surfaceRecorder) AddClass(id, class string) {
	if r.classes[id] == nil {
		r.classes[id] = make(map[string]bool)
	}
	r.classes[id][class] = true
}

func (r *surfaceRecorder) RemoveClass(id, class string) {
	delete(r.classes[id], class)
}

func (r *surfaceRecorder) HasClass(id, class string) bool {
	return r.classes[id][class]
}

var _ port.ToastTarget = (*toastRecorder)(nil)

type toastRecorder struct {
	messages   []string
	severities []string
	hidden     int
}

func (r *toastRecorder) ShowToast(message, severity string) {
	r.messages = append(r.messages, message)
	r.severities = append(r.severities, severity)
}

func (r *toastRecorder) HideToast() {
	r.hidden++
}
