package mqhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/events"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
	"github.com/jewebs/sistema-gestao-conteudo/internal/store"
)

// TaskCreatedHandler accepts task.created events from external producers into
// the store.
type TaskCreatedHandler struct {
	store  *store.TaskStore
	logger *zap.Logger
}

func NewTaskCreatedHandler(store *store.TaskStore, logger *zap.Logger) *TaskCreatedHandler {
	return &TaskCreatedHandler{store: store, logger: logger}
}

func (h *TaskCreatedHandler) Handle(ctx context.Context, data json.RawMessage) error {
	var payload events.TaskCreatedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.logger.Error("Failed to decode task.created payload", zap.Error(err))
		// A malformed payload never becomes valid; don't requeue it forever.
		return nil
	}

	task, err := taskFromPayload(payload)
	if err != nil {
		h.logger.Error("Rejected task.created payload",
			zap.String("task_name", payload.TaskName),
			zap.Error(err),
		)
		return nil
	}

	created := h.store.Add(task)
	h.logger.Info("Task created from event",
		zap.String("task_id", created.TaskID),
		zap.String("task_name", created.TaskName),
	)
	return nil
}

func taskFromPayload(p events.TaskCreatedPayload) (model.Task, error) {
	if p.TaskName == "" {
		return model.Task{}, fmt.Errorf("taskName is required")
	}

	start, err := time.Parse(time.RFC3339, p.StartDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("invalid startDate: %w", err)
	}
	end, err := time.Parse(time.RFC3339, p.EndDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("invalid endDate: %w", err)
	}

	task := model.Task{
		TaskName:  p.TaskName,
		ProjectID: p.ProjectID,
		Client:    p.Client,
		StartDate: start,
		EndDate:   end,
		Status:    model.StatusPending,
		Priority:  model.PriorityMedium,
		GmbSubtask: model.GmbSubtask{
			Status: model.GmbNotApplicable,
		},
	}

	if priority, ok := model.ParsePriority(p.Priority); ok {
		task.Priority = priority
	}
	if status, ok := model.ParseStatus(p.Status); ok {
		task.Status = status
	}
	if gmb, ok := model.ParseGmbStatus(p.GmbStatus); ok {
		task.GmbSubtask.Status = gmb
	}

	return task, nil
}
