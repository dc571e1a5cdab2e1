package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/events"
	"github.com/jewebs/sistema-gestao-conteudo/internal/exporter"
	"github.com/jewebs/sistema-gestao-conteudo/internal/filter"
	"github.com/jewebs/sistema-gestao-conteudo/internal/importer"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
	"github.com/jewebs/sistema-gestao-conteudo/internal/notify"
	"github.com/jewebs/sistema-gestao-conteudo/internal/store"
)

type ImportExportHandler struct {
	store     *store.TaskStore
	mapper    *importer.Mapper
	publisher notify.EventPublisher
	logger    *zap.Logger
}

func NewImportExportHandler(store *store.TaskStore, mapper *importer.Mapper, publisher notify.EventPublisher, logger *zap.Logger) *ImportExportHandler {
	return &ImportExportHandler{store: store, mapper: mapper, publisher: publisher, logger: logger}
}

// ImportRequest carries the materialized sheet cells plus the user-chosen
// mapping and the two manual defaults. An empty mapping falls back to the
// header auto-map.
type ImportRequest struct {
	Cells    [][]string        `json:"cells"`
	Mapping  map[string]string `json:"mapping"`
	Client   string            `json:"client"`
	Priority string            `json:"priority"`
}

func (h *ImportExportHandler) ImportTasks(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("ImportTasks: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import payload"})
		return
	}

	priority, ok := model.ParsePriority(req.Priority)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prioridade inválida: " + req.Priority})
		return
	}

	sheet, err := importer.ParseSheet(req.Cells)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping := importer.Mapping(req.Mapping)
	if len(mapping) == 0 {
		mapping = importer.AutoMap(sheet.Headers)
	}

	result, err := h.mapper.Map(sheet.Rows, mapping, req.Client, priority)
	if err != nil {
		h.logger.Warn("ImportTasks: rejected",
			zap.Int("rows", len(sheet.Rows)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added := h.store.AddMany(result.Tasks)

	h.logger.Info("ImportTasks: success",
		zap.Int("imported", len(added)),
		zap.Int("skipped", result.Skipped),
		zap.String("client", req.Client),
	)

	if h.publisher != nil {
		payload := events.TaskImportedPayload{
			Count:   len(added),
			Skipped: result.Skipped,
			Client:  req.Client,
		}
		if err := h.publisher.Publish(events.TaskImportedKey, payload); err != nil {
			h.logger.Error("ImportTasks: failed to publish event", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": len(added),
		"skipped":  result.Skipped,
		"tasks":    added,
	})
}

func (h *ImportExportHandler) ExportTasks(c *gin.Context) {
	spec, err := filterSpec(c, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visible := filter.Apply(h.store.List(), spec)
	rows, err := exporter.Serialize(visible)
	if err != nil {
		if errors.Is(err, exporter.ErrNoTasksToExport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("ExportTasks: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export tasks"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="tarefas.csv"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exporter.Columns); err != nil {
		h.logger.Error("ExportTasks: write failed", zap.Error(err))
		return
	}
	if err := w.WriteAll(rows); err != nil {
		h.logger.Error("ExportTasks: write failed", zap.Error(err))
		return
	}

	h.logger.Info("ExportTasks: success", zap.Int("task_count", len(rows)))
}
