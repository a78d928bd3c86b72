package domain

// Severity classifies a transient notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Themes accepted by the preferences store.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
