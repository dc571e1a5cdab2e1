package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
)

// memoryBlob is an in-memory Blob with injectable failures.
type memoryBlob struct {
	mu      sync.Mutex
	data    []byte
	loadErr error
	saveErr error
	saves   int
}

func (b *memoryBlob) Load(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	if b.data == nil {
		return nil, ErrBlobNotFound
	}
	return append([]byte(nil), b.data...), nil
}

func (b *memoryBlob) Save(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saves++
	if b.saveErr != nil {
		return b.saveErr
	}
	b.data = append([]byte(nil), data...)
	return nil
}

func newTestStore(t *testing.T, seed []model.Task) (*TaskStore, *memoryBlob) {
	t.Helper()
	blob := &memoryBlob{}
	return New(blob, seed, zap.NewNop()), blob
}

func sampleTask(name string) model.Task {
	return model.Task{
		TaskName:  name,
		ProjectID: "PJ01",
		Client:    "Nike",
		StartDate: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
		EndDate:   time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local),
		Priority:  model.PriorityMedium,
		Status:    model.StatusPending,
	}
}

func TestLoad(t *testing.T) {
	seed := []model.Task{sampleTask("semente")}

	t.Run("empty blob falls back to seed", func(t *testing.T) {
		s, _ := newTestStore(t, seed)
		if got := s.List(); len(got) != 1 || got[0].TaskName != "semente" {
			t.Errorf("List() = %v, want seed dataset", got)
		}
	})

	t.Run("load failure falls back to seed", func(t *testing.T) {
		blob := &memoryBlob{loadErr: errors.New("conexão recusada")}
		s := New(blob, seed, zap.NewNop())
		if got := s.List(); len(got) != 1 || got[0].TaskName != "semente" {
			t.Errorf("List() = %v, want seed dataset", got)
		}
	})

	t.Run("malformed blob falls back to seed", func(t *testing.T) {
		blob := &memoryBlob{data: []byte("{not json")}
		s := New(blob, seed, zap.NewNop())
		if got := s.List(); len(got) != 1 || got[0].TaskName != "semente" {
			t.Errorf("List() = %v, want seed dataset", got)
		}
	})

	t.Run("valid blob wins over seed", func(t *testing.T) {
		persisted := sampleTask("persistida")
		persisted.TaskID = "TSK-1-aaaaa"
		data, err := json.Marshal([]model.Task{persisted})
		if err != nil {
			t.Fatal(err)
		}
		blob := &memoryBlob{data: data}
		s := New(blob, seed, zap.NewNop())
		got := s.List()
		if len(got) != 1 || got[0].TaskName != "persistida" {
			t.Errorf("List() = %v, want persisted dataset", got)
		}
	})
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s, blob := newTestStore(t, nil)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		added := s.Add(sampleTask("tarefa"))
		if added.TaskID == "" || !strings.HasPrefix(added.TaskID, "TSK-") {
			t.Fatalf("TaskID = %q, want TSK- prefix", added.TaskID)
		}
		if seen[added.TaskID] {
			t.Fatalf("duplicate id %q", added.TaskID)
		}
		seen[added.TaskID] = true
	}

	if len(s.List()) != 20 {
		t.Errorf("List() = %d tasks, want 20", len(s.List()))
	}
	if blob.saves != 20 {
		t.Errorf("blob saves = %d, want one per mutation", blob.saves)
	}
}

// TestAddManyAssignsUniqueIDsWithinSameSecond uses a batch large enough that
// the short id suffix would collide by the birthday bound without the
// regenerate-on-collision check.
func TestAddManyAssignsUniqueIDsWithinSameSecond(t *testing.T) {
	s, _ := newTestStore(t, nil)

	batch := make([]model.Task, 5000)
	for i := range batch {
		batch[i] = sampleTask("lote")
	}
	added := s.AddMany(batch)
	if len(added) != 5000 {
		t.Fatalf("AddMany returned %d tasks, want 5000", len(added))
	}
	seen := map[string]bool{}
	for _, task := range added {
		if seen[task.TaskID] {
			t.Fatalf("duplicate id %q within one batch", task.TaskID)
		}
		seen[task.TaskID] = true
	}
}

func TestAddManyEmptyBatch(t *testing.T) {
	s, blob := newTestStore(t, nil)
	if got := s.AddMany(nil); got != nil {
		t.Errorf("AddMany(nil) = %v, want nil", got)
	}
	if blob.saves != 0 {
		t.Errorf("blob saves = %d, want 0 for an empty batch", blob.saves)
	}
}

func TestUpdate(t *testing.T) {
	s, _ := newTestStore(t, nil)
	added := s.Add(sampleTask("original"))

	added.TaskName = "renomeada"
	if err := s.Update(added); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := s.List(); got[0].TaskName != "renomeada" {
		t.Errorf("TaskName = %q after update", got[0].TaskName)
	}

	missing := sampleTask("fantasma")
	missing.TaskID = "TSK-0-zzzzz"
	if err := s.Update(missing); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Update(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t, nil)
	added := s.Add(sampleTask("descartável"))

	s.Delete(added.TaskID)
	if got := s.List(); len(got) != 0 {
		t.Fatalf("List() = %v after delete", got)
	}
	// Second delete of the same id must be a silent no-op.
	s.Delete(added.TaskID)
	s.Delete("TSK-0-zzzzz")
}

func TestMoveToNextWeek(t *testing.T) {
	s, _ := newTestStore(t, nil)
	added := s.Add(sampleTask("agenda"))

	moved, err := s.MoveToNextWeek(added.TaskID)
	if err != nil {
		t.Fatalf("MoveToNextWeek: %v", err)
	}

	wantStart := time.Date(2024, 1, 8, 10, 0, 0, 0, time.Local)
	wantEnd := time.Date(2024, 1, 10, 10, 0, 0, 0, time.Local)
	if !moved.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", moved.StartDate, wantStart)
	}
	if !moved.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", moved.EndDate, wantEnd)
	}

	if _, err := s.MoveToNextWeek("TSK-0-zzzzz"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("MoveToNextWeek(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	s, _ := newTestStore(t, nil)
	s.Add(sampleTask("imutável"))

	snapshot := s.List()
	snapshot[0].TaskName = "mutação local"
	if got := s.List(); got[0].TaskName != "imutável" {
		t.Error("mutating a List() snapshot leaked into the store")
	}
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	blob := &memoryBlob{saveErr: errors.New("redis indisponível")}
	s := New(blob, nil, zap.NewNop())

	added := s.Add(sampleTask("resiliente"))
	if got := s.List(); len(got) != 1 || got[0].TaskID != added.TaskID {
		t.Errorf("List() = %v, want the task despite the write failure", got)
	}

	// The next successful mutation rewrites the whole collection.
	blob.mu.Lock()
	blob.saveErr = nil
	blob.mu.Unlock()
	s.Add(sampleTask("cura"))

	var persisted []model.Task
	if err := json.Unmarshal(blob.data, &persisted); err != nil {
		t.Fatalf("persisted blob: %v", err)
	}
	if len(persisted) != 2 {
		t.Errorf("persisted %d tasks, want both after the healing write", len(persisted))
	}
}

// TestReloadKeepsUnsetEnumTasks persists a task whose status and priority were
// never set, as an import with unmatched enum cells produces, and reloads the
// store from its own blob. The blob must round-trip instead of being treated
// as malformed and replaced by the seed dataset.
func TestReloadKeepsUnsetEnumTasks(t *testing.T) {
	seed := []model.Task{sampleTask("semente")}
	blob := &memoryBlob{}
	s := New(blob, seed, zap.NewNop())

	unset := sampleTask("importada")
	unset.Status = 0
	unset.Priority = 0
	unset.GmbSubtask.Status = 0
	added := s.Add(unset)

	reloaded := New(blob, seed, zap.NewNop())
	got := reloaded.List()
	if len(got) != 2 {
		t.Fatalf("List() after reload = %d tasks, want blob contents, not seed fallback", len(got))
	}
	found := false
	for _, task := range got {
		if task.TaskID == added.TaskID {
			found = true
			if task.Status != 0 || task.Priority != 0 {
				t.Errorf("unset enums = %v/%v after reload, want still unset", task.Status, task.Priority)
			}
		}
	}
	if !found {
		t.Error("task with unset enums missing after reload")
	}
}

func TestNextAction(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	post := func(day int) model.WebsitePost {
		return model.WebsitePost{PostDate: time.Date(2024, 6, day, 10, 0, 0, 0, time.Local)}
	}

	s, _ := newTestStore(t, nil)
	past := sampleTask("passada")
	past.WebsitePost = post(1)
	s.Add(past)

	done := sampleTask("concluída")
	done.Status = model.StatusDone
	done.WebsitePost = post(16)
	s.Add(done)

	later := sampleTask("depois")
	later.WebsitePost = post(25)
	s.Add(later)

	soon := sampleTask("em breve")
	soon.WebsitePost = post(18)
	s.Add(soon)

	got, ok := s.NextAction(now)
	if !ok {
		t.Fatal("NextAction returned no candidate")
	}
	if got.TaskName != "em breve" {
		t.Errorf("NextAction = %q, want the earliest future non-done task", got.TaskName)
	}

	empty, _ := newTestStore(t, nil)
	if _, ok := empty.NextAction(now); ok {
		t.Error("NextAction on an empty store reported a candidate")
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestStore(t, nil)

	var calls int
	unsubscribe := s.Subscribe(func() { calls++ })

	added := s.Add(sampleTask("observada"))
	s.Delete(added.TaskID)
	if calls != 2 {
		t.Fatalf("subscriber called %d times, want once per mutation", calls)
	}

	unsubscribe()
	s.Add(sampleTask("silenciosa"))
	if calls != 2 {
		t.Errorf("subscriber called %d times after unsubscribe, want 2", calls)
	}
}
