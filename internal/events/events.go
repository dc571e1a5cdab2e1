// Package events holds the MQ contracts published and consumed by the
// dashboard on the "events" topic exchange.
package events

// Routing keys.
const (
	TaskCreatedKey  = "task.created"
	TaskOverdueKey  = "task.overdue"
	TaskUpcomingKey = "task.upcoming"
	TaskImportedKey = "task.imported"
)

// TaskCreatedPayload is consumed from external producers creating tasks.
// Dates are RFC3339; priority, status and gmbStatus carry display labels.
type TaskCreatedPayload struct {
	TaskName  string `json:"taskName"`
	ProjectID string `json:"projectId"`
	Client    string `json:"client"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	GmbStatus string `json:"gmbStatus,omitempty"`
}

// NotificationPayload is published for both overdue and upcoming conditions.
type NotificationPayload struct {
	NotificationID string `json:"notificationId"`
	TaskID         string `json:"taskId"`
	TaskName       string `json:"taskName"`
	Message        string `json:"message"`
	Kind           string `json:"kind"`
}

// TaskImportedPayload is published after a successful bulk import.
type TaskImportedPayload struct {
	Count   int    `json:"count"`
	Skipped int    `json:"skipped"`
	Client  string `json:"client"`
}
