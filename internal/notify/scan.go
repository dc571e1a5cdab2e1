package notify

import (
	"fmt"
	"time"

	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
)

const upcomingWindow = 24 * time.Hour

// Scan derives the notifications for the task collection at a given instant.
// Overdue: end date passed and the task is not done. Upcoming: the task starts
// within the next 24 hours. Both conditions are checked independently; data
// with an inverted start/end can legitimately produce both.
func Scan(tasks []model.Task, now time.Time) []model.Notification {
	var out []model.Notification
	horizon := now.Add(upcomingWindow)

	for _, t := range tasks {
		if t.Status == model.StatusDone {
			continue
		}

		if t.EndDate.Before(now) {
			out = append(out, model.Notification{
				ID:      t.TaskID + "-overdue",
				Message: fmt.Sprintf("A tarefa %q está atrasada!", t.TaskName),
				Kind:    model.NotificationError,
			})
		}

		if t.StartDate.After(now) && !t.StartDate.After(horizon) {
			out = append(out, model.Notification{
				ID:      t.TaskID + "-upcoming",
				Message: fmt.Sprintf("A tarefa %q começa em menos de 24 horas.", t.TaskName),
				Kind:    model.NotificationWarning,
			})
		}
	}

	return out
}
