package service

import (
	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
)

// Preferences persists small per-user settings. Today that is the theme.
type Preferences struct {
	store    port.KeyValueStore
	themeKey string
}

func NewPreferences(store port.KeyValueStore, themeKey string) *Preferences {
	return &Preferences{store: store, themeKey: themeKey}
}

// Theme returns the persisted theme, defaulting to light.
func (p *Preferences) Theme() string {
	theme := domain.ThemeLight
	p.store.Get(p.themeKey, &theme)
	if theme != domain.ThemeDark {
		theme = domain.ThemeLight
	}
	return theme
}

func (p *Preferences) SetTheme(theme string) bool {
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return false
	}
	return p.store.Set(p.themeKey, theme)
}

// Toggle flips the theme and returns the new value.
func (p *Preferences) Toggle() string {
	next := domain.ThemeDark
	if p.Theme() == domain.ThemeDark {
		next = domain.ThemeLight
	}
	p.SetTheme(next)
	return next
}
