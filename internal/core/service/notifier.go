package service

import (
	"sync"
	"time"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
)

// Notifier surfaces fire-and-forget transient messages on a toast target.
// There is no queue: a second Show preempts the first's remaining display
// time, and the corresponding auto-hide is rescheduled.
type Notifier struct {
	mu       sync.Mutex
	target   port.ToastTarget
	duration time.Duration
	hide     *time.Timer
}

func NewNotifier(target port.ToastTarget, defaultDuration time.Duration) *Notifier {
	return &Notifier{target: target, duration: defaultDuration}
}

// Show displays the message and schedules auto-hide after duration.
// No-op when no target is attached.
func (n *Notifier) Show(message string, severity domain.Severity, duration time.Duration) {
	if n.target == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.hide != nil {
		n.hide.Stop()
	}
	n.target.ShowToast(message, string(severity))
	n.hide = time.AfterFunc(duration, n.Hide)
}

// Hide dismisses the current toast, if any.
func (n *Notifier) Hide() {
	if n.target == nil {
		return
	}
	n.target.HideToast()
}

func (n *Notifier) Success(message string) {
	n.Show(message, domain.SeveritySuccess, n.duration)
}

func (n *Notifier) Error(message string) {
	n.Show(message, domain.SeverityError, n.duration)
}

func (n *Notifier) Info(message string) {
	n.Show(message, domain.SeverityInfo, n.duration)
}

func (n *Notifier) Warning(message string) {
	n.Show(message, domain.SeverityWarning, n.duration)
}
