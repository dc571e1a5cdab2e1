package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/store"
)

type memoryBlob struct {
	data []byte
}

func (b *memoryBlob) Load(ctx context.Context) ([]byte, error) {
	if b.data == nil {
		return nil, store.ErrBlobNotFound
	}
	return b.data, nil
}

func (b *memoryBlob) Save(ctx context.Context, data []byte) error {
	b.data = data
	return nil
}

func newTaskRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := store.New(&memoryBlob{}, nil, zap.NewNop())
	h := NewTaskHandler(s, zap.NewNop())
	r := gin.New()
	r.GET("/tasks", h.ListTasks)
	return r
}

func TestListTasksReportsActivePreset(t *testing.T) {
	r := newTaskRouter(t)
	today := time.Now().Format("2006-01-02")

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"preset today", "?preset=today", "today"},
		{"preset week", "?preset=week", "week"},
		{"preset month", "?preset=month", "month"},
		{"manual bounds matching today", "?start=" + today + "&end=" + today, "today"},
		{"no filter", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/tasks"+tc.query, nil)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			var body struct {
				ActivePreset string `json:"activePreset"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.ActivePreset != tc.want {
				t.Errorf("activePreset = %q, want %q", body.ActivePreset, tc.want)
			}
		})
	}
}

func TestListTasksRejectsUnknownPreset(t *testing.T) {
	r := newTaskRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks?preset=amanhã", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
