package users

import "time"

// Severity classifies a notification for rendering.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient message. It disappears on its own after the
// configured duration, or earlier via Dismiss.
type Notification struct {
	Message  string
	Severity Severity

	deadline time.Time
}

// setNote replaces the current notification. Callers hold v.mu.
func (v *View) setNote(msg string, sev Severity) {
	v.note = &Notification{
		Message:  msg,
		Severity: sev,
		deadline: v.now().Add(v.noteTTL),
	}
}

// Notification returns the active notification, or nil once it has expired
// or been dismissed.
func (v *View) Notification() *Notification {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.note == nil {
		return nil
	}
	if v.now().After(v.note.deadline) {
		v.note = nil
		return nil
	}
	n := *v.note
	return &n
}

// Dismiss closes the notification explicitly.
func (v *View) Dismiss() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.note = nil
}

// Notify posts a notification from outside the view's own flows (e.g. the
// login screen reporting a failure through the same surface).
func (v *View) Notify(msg string, sev Severity) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setNote(msg, sev)
}
