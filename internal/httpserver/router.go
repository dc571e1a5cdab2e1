package httpserver

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/handler"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/metrics"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/mq"
)

func NewRouter(
	taskHandler *handler.TaskHandler,
	notificationHandler *handler.NotificationHandler,
	importExportHandler *handler.ImportExportHandler,
	logger *zap.Logger,
	rdb *redis.Client,
	consumer *mq.Consumer,
) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
		metrics.RecordHTTPRequestDuration(c.Request.Method, c.FullPath(), strconv.Itoa(status), latency)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			c.JSON(500, gin.H{"status": "redis_not_ready", "error": err.Error()})
			return
		}

		if consumer != nil && !consumer.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/tasks", taskHandler.ListTasks)
	r.POST("/tasks", taskHandler.CreateTask)
	r.PUT("/tasks/:id", taskHandler.UpdateTask)
	r.DELETE("/tasks/:id", taskHandler.DeleteTask)
	r.POST("/tasks/:id/move-next-week", taskHandler.MoveTaskToNextWeek)
	r.GET("/tasks/next-action", taskHandler.NextAction)

	r.POST("/tasks/import", importExportHandler.ImportTasks)
	r.GET("/tasks/export", importExportHandler.ExportTasks)

	r.GET("/notifications", notificationHandler.ListNotifications)
	r.POST("/notifications/:id/dismiss", notificationHandler.DismissNotification)

	return r
}
