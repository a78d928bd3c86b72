package port

// KeyValueStore is the persistence substrate the services mirror their state
// into. It models browser local storage: synchronous, local, key to JSON value.
//
// Get decodes the stored value into dst and reports whether it succeeded.
// On a missing key or a decode failure dst keeps whatever default the caller
// preset, so Get(key, &v) plays the role of get(key, default).
//
// Implementations never propagate storage failures: they log and report false.
type KeyValueStore interface {
	Set(key string, value any) bool
	Get(key string, dst any) bool
	Remove(key string) bool
	Clear() bool
}

// ToastTarget displays at most one transient message at a time.
// ShowToast replaces whatever is currently displayed.
type ToastTarget interface {
	ShowToast(message string, severity string)
	HideToast()
}

// RenderSurface is the rendering substrate the views draw into. It stands in
// for a DOM: named containers receive markup, named targets receive text and
// CSS-like state classes.
type RenderSurface interface {
	SetContent(containerID string, markup string)
	SetText(targetID string, text string)
	AddClass(targetID string, class string)
	RemoveClass(targetID string, class string)
	HasClass(targetID string, class string) bool
}
