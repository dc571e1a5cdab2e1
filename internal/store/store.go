package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/dateutil"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/metrics"
)

// ErrTaskNotFound is returned when an operation references an absent taskId.
var ErrTaskNotFound = errors.New("task not found")

const persistTimeout = 2 * time.Second

// TaskStore owns the canonical task collection. Every mutation runs under one
// mutex and rewrites the full blob; a failed write is logged and healed by the
// next one, the in-memory state stays authoritative.
type TaskStore struct {
	mu          sync.Mutex
	tasks       []model.Task
	blob        Blob
	logger      *zap.Logger
	subscribers map[int]func()
	nextSubID   int
}

func New(blob Blob, seed []model.Task, logger *zap.Logger) *TaskStore {
	s := &TaskStore{
		blob:        blob,
		logger:      logger,
		subscribers: make(map[int]func()),
	}
	s.tasks = s.load(seed)
	return s
}

func (s *TaskStore) load(seed []model.Task) []model.Task {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	data, err := s.blob.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			s.logger.Info("No persisted tasks found, starting from seed dataset",
				zap.Int("seed_count", len(seed)),
			)
		} else {
			s.logger.Error("Failed to load task blob, starting from seed dataset",
				zap.Error(err),
			)
		}
		return append([]model.Task(nil), seed...)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Error("Malformed task blob, starting from seed dataset",
			zap.Error(err),
			zap.Int("blob_size", len(data)),
		)
		return append([]model.Task(nil), seed...)
	}

	s.logger.Info("Loaded tasks from blob", zap.Int("count", len(tasks)))
	return tasks
}

// persist rewrites the full collection. Called with the mutex held.
func (s *TaskStore) persist() {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Error("Failed to serialize tasks", zap.Error(err))
		metrics.BlobWriteFailures.Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.blob.Save(ctx, data); err != nil {
		s.logger.Error("Failed to persist tasks, will retry on next mutation",
			zap.Error(err),
			zap.Int("count", len(s.tasks)),
		)
		metrics.BlobWriteFailures.Inc()
	}
}

// newTaskID is called with the mutex held. The short suffix can collide under
// large same-second batches, so candidates are checked against the collection
// and against ids already handed out in the current batch.
func (s *TaskStore) newTaskID(used map[string]bool) string {
	for {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
		id := fmt.Sprintf("TSK-%d-%s", time.Now().Unix(), suffix)
		if used[id] || s.indexOf(id) >= 0 {
			continue
		}
		used[id] = true
		return id
	}
}

// Add assigns a unique id and appends the task.
func (s *TaskStore) Add(t model.Task) model.Task {
	s.mu.Lock()
	t.TaskID = s.newTaskID(map[string]bool{})
	s.tasks = append(s.tasks, t)
	s.persist()
	s.mu.Unlock()

	metrics.IncrementTaskMutation("add")
	s.logger.Info("Task added",
		zap.String("task_id", t.TaskID),
		zap.String("task_name", t.TaskName),
		zap.String("client", t.Client),
	)
	s.notifySubscribers()
	return t
}

// AddMany appends a batch, each task getting a unique id even when the whole
// batch lands within the same second.
func (s *TaskStore) AddMany(tasks []model.Task) []model.Task {
	if len(tasks) == 0 {
		return nil
	}

	s.mu.Lock()
	added := make([]model.Task, 0, len(tasks))
	used := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		t.TaskID = s.newTaskID(used)
		s.tasks = append(s.tasks, t)
		added = append(added, t)
	}
	s.persist()
	s.mu.Unlock()

	metrics.IncrementTaskMutation("add_many")
	s.logger.Info("Task batch added", zap.Int("count", len(added)))
	s.notifySubscribers()
	return added
}

// Update replaces the task with the matching id, or returns ErrTaskNotFound.
func (s *TaskStore) Update(t model.Task) error {
	s.mu.Lock()
	idx := s.indexOf(t.TaskID)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn("Update of unknown task rejected", zap.String("task_id", t.TaskID))
		return ErrTaskNotFound
	}
	s.tasks[idx] = t
	s.persist()
	s.mu.Unlock()

	metrics.IncrementTaskMutation("update")
	s.logger.Info("Task updated", zap.String("task_id", t.TaskID))
	s.notifySubscribers()
	return nil
}

// Delete removes the task with the given id. Deleting an absent id is a no-op.
func (s *TaskStore) Delete(id string) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persist()
	s.mu.Unlock()

	metrics.IncrementTaskMutation("delete")
	s.logger.Info("Task deleted", zap.String("task_id", id))
	s.notifySubscribers()
}

// MoveToNextWeek shifts the task's start and end by 7 calendar days,
// preserving the time of day.
func (s *TaskStore) MoveToNextWeek(id string) (model.Task, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Task{}, ErrTaskNotFound
	}
	s.tasks[idx].StartDate = dateutil.AddDays(s.tasks[idx].StartDate, 7)
	s.tasks[idx].EndDate = dateutil.AddDays(s.tasks[idx].EndDate, 7)
	moved := s.tasks[idx]
	s.persist()
	s.mu.Unlock()

	metrics.IncrementTaskMutation("move_next_week")
	s.logger.Info("Task moved to next week",
		zap.String("task_id", id),
		zap.Time("new_start", moved.StartDate),
		zap.Time("new_end", moved.EndDate),
	)
	s.notifySubscribers()
	return moved, nil
}

// List returns a snapshot copy of the collection.
func (s *TaskStore) List() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.tasks...)
}

// NextAction returns the not-yet-done task with the earliest future website
// post date, the "next Canva folder to work on".
func (s *TaskStore) NextAction(now time.Time) (model.Task, bool) {
	candidates := []model.Task{}
	for _, t := range s.List() {
		if t.Status != model.StatusDone && !t.WebsitePost.PostDate.Before(now) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return model.Task{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].WebsitePost.PostDate.Before(candidates[j].WebsitePost.PostDate)
	})
	return candidates[0], true
}

// Subscribe registers a callback invoked after every mutation and returns the
// matching unsubscribe.
func (s *TaskStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *TaskStore) notifySubscribers() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// indexOf is called with the mutex held.
func (s *TaskStore) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.TaskID == id {
			return i
		}
	}
	return -1
}
