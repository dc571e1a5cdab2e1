package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/dateutil"
	"github.com/jewebs/sistema-gestao-conteudo/internal/filter"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
	"github.com/jewebs/sistema-gestao-conteudo/internal/schedule"
	"github.com/jewebs/sistema-gestao-conteudo/internal/store"
)

type TaskHandler struct {
	store  *store.TaskStore
	logger *zap.Logger
}

func NewTaskHandler(store *store.TaskStore, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{store: store, logger: logger}
}

// filterSpec builds the filter from query parameters. Presets win over
// explicit bounds; a bare date on start/end expands to the day edge.
func filterSpec(c *gin.Context, now time.Time) (filter.Spec, error) {
	spec := filter.Reset()
	spec.Client = c.Query("client")
	spec.GmbStatus = c.Query("gmb_status")

	switch c.Query("preset") {
	case "today":
		spec.DateRange = filter.TodayRange(now)
		return spec, nil
	case "week":
		spec.DateRange = filter.WeekRange(now)
		return spec, nil
	case "month":
		spec.DateRange = filter.MonthRange(now)
		return spec, nil
	case "":
	default:
		return filter.Spec{}, errors.New("preset inválido")
	}

	if raw := c.Query("start"); raw != "" {
		t, err := parseBound(raw)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.DateRange.Start = dateutil.StartOfDay(t)
	}
	if raw := c.Query("end"); raw != "" {
		t, err := parseBound(raw)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.DateRange.End = dateutil.EndOfDay(t)
	}
	return spec, nil
}

func parseBound(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, errors.New("data inválida: " + raw)
	}
	return t, nil
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	now := time.Now()
	spec, err := filterSpec(c, now)
	if err != nil {
		h.logger.Warn("ListTasks: bad filter", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visible := filter.Apply(h.store.List(), spec)

	h.logger.Info("ListTasks: success",
		zap.Int("task_count", len(visible)),
		zap.String("client_filter", spec.Client),
		zap.String("gmb_filter", spec.GmbStatus),
	)

	if c.Query("group") == "day" {
		grouping := schedule.GroupByDay(visible, spec)
		c.JSON(http.StatusOK, gin.H{
			"tasks":        visible,
			"grouping":     grouping,
			"activePreset": activePreset(spec, now),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": visible, "activePreset": activePreset(spec, now)})
}

// activePreset names the preset window the effective range lines up with, so
// clients can highlight the matching shortcut even when the bounds were typed
// by hand.
func activePreset(spec filter.Spec, now time.Time) string {
	switch {
	case filter.RangeActive(spec, filter.TodayRange(now)):
		return "today"
	case filter.RangeActive(spec, filter.WeekRange(now)):
		return "week"
	case filter.RangeActive(spec, filter.MonthRange(now)):
		return "month"
	}
	return ""
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		h.logger.Warn("CreateTask: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload"})
		return
	}

	created := h.store.Add(task)
	c.JSON(http.StatusCreated, gin.H{"task": created})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		h.logger.Warn("UpdateTask: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload"})
		return
	}
	task.TaskID = c.Param("id")

	if err := h.store.Update(task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		h.logger.Error("UpdateTask: failed", zap.String("task_id", task.TaskID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *TaskHandler) MoveTaskToNextWeek(c *gin.Context) {
	id := c.Param("id")
	moved, err := h.store.MoveToNextWeek(id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		h.logger.Error("MoveTaskToNextWeek: failed", zap.String("task_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": moved})
}

func (h *TaskHandler) NextAction(c *gin.Context) {
	task, ok := h.store.NextAction(time.Now())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"task": nil, "message": "Tudo em dia!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}
