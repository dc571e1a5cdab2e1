package model

// NotificationKind is the severity of a derived notification.
type NotificationKind string

const (
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

// Notification is derived from the task collection, never stored. The id is
// deterministic per (task, condition) so dismissal survives re-derivation as
// long as the condition holds.
type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}
