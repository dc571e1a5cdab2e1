package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/notify"
)

type NotificationHandler struct {
	scanner *notify.Scanner
	logger  *zap.Logger
}

func NewNotificationHandler(scanner *notify.Scanner, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{scanner: scanner, logger: logger}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications := h.scanner.Current()
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	id := c.Param("id")
	h.scanner.Dismiss(id)
	h.logger.Info("Notification dismissed", zap.String("notification_id", id))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
