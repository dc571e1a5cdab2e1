package notify

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/events"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/metrics"
)

// TaskLister is the read side of the store the scanner watches.
type TaskLister interface {
	List() []model.Task
	Subscribe(fn func()) func()
}

// EventPublisher publishes notification events; satisfied by mq.Publisher.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Scanner re-derives notifications on a wall-clock ticker and immediately on
// every task mutation. Dismissal only suppresses until the next scan; the
// condition reintroduces the notification as long as it holds.
type Scanner struct {
	lister    TaskLister
	publisher EventPublisher
	deduper   *Deduper
	logger    *zap.Logger
	interval  time.Duration
	now       func() time.Time

	mu      sync.Mutex
	current []model.Notification

	stopOnce    sync.Once
	stopCh      chan struct{}
	unsubscribe func()
}

func NewScanner(lister TaskLister, publisher EventPublisher, deduper *Deduper, interval time.Duration, logger *zap.Logger) *Scanner {
	return &Scanner{
		lister:    lister,
		publisher: publisher,
		deduper:   deduper,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start runs the initial scan, subscribes to store mutations and launches the
// ticker goroutine.
func (s *Scanner) Start() {
	s.Rescan()
	s.unsubscribe = s.lister.Subscribe(s.Rescan)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Rescan()
			case <-s.stopCh:
				return
			}
		}
	}()

	s.logger.Info("Notification scanner started", zap.Duration("interval", s.interval))
}

// Stop tears down the ticker and the store subscription. Idempotent.
func (s *Scanner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		s.logger.Info("Notification scanner stopped")
	})
}

// Rescan recomputes the notification set against now.
func (s *Scanner) Rescan() {
	tasks := s.lister.List()
	derived := Scan(tasks, s.now())

	s.mu.Lock()
	s.current = derived
	s.mu.Unlock()

	metrics.NotificationScanCount.Inc()
	metrics.ActiveNotifications.Set(float64(len(derived)))

	s.logger.Debug("Notification scan completed",
		zap.Int("tasks", len(tasks)),
		zap.Int("notifications", len(derived)),
	)

	s.publish(tasks, derived)
}

// Current returns the displayed notification set.
func (s *Scanner) Current() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.current...)
}

// Dismiss removes a notification from the displayed set by id. Transient: the
// next scan re-derives it if the condition still holds.
func (s *Scanner) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.current {
		if n.ID == id {
			s.current = append(s.current[:i], s.current[i+1:]...)
			return
		}
	}
}

func (s *Scanner) publish(tasks []model.Task, derived []model.Notification) {
	if s.publisher == nil {
		return
	}

	names := make(map[string]string, len(tasks))
	for _, t := range tasks {
		names[t.TaskID] = t.TaskName
	}

	ctx := context.Background()
	for _, n := range derived {
		if s.deduper != nil && !s.deduper.AcquireOnce(ctx, n.ID) {
			continue
		}

		taskID := strings.TrimSuffix(strings.TrimSuffix(n.ID, "-overdue"), "-upcoming")
		routingKey := events.TaskUpcomingKey
		if n.Kind == model.NotificationError {
			routingKey = events.TaskOverdueKey
		}

		payload := events.NotificationPayload{
			NotificationID: n.ID,
			TaskID:         taskID,
			TaskName:       names[taskID],
			Message:        n.Message,
			Kind:           string(n.Kind),
		}
		if err := s.publisher.Publish(routingKey, payload); err != nil {
			s.logger.Error("Failed to publish notification event",
				zap.String("routing_key", routingKey),
				zap.String("notification_id", n.ID),
				zap.Error(err),
			)
		}
	}
}
