package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"adhd-task-assistant/internal/intent/cache"
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type stubRecognizer struct{}

func (stubRecognizer) Recognize(ctx context.Context, u string) model.TaskIntent {
	return model.TaskIntent{Intent: model.IntentHelp, RawTranscript: u, Confidence: 0.9}
}
func (stubRecognizer) CacheStats() cache.Stats { return cache.Stats{} }
func (stubRecognizer) ClearCache()             {}

type stubUseCase struct{}

func (stubUseCase) HandleUtterance(ctx context.Context, sc model.Scope, in task.HandleInput) (task.HandleOutput, error) {
	return task.HandleOutput{Message: "ok"}, nil
}
func (stubUseCase) List(ctx context.Context, sc model.Scope, in task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{View: task.ViewPrioritized, Tasks: []task.RankedTask{}}, nil
}
func (stubUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.RankedTask, error) {
	return task.RankedTask{}, task.ErrTaskNotFound
}
func (stubUseCase) UpdateStatus(ctx context.Context, sc model.Scope, in task.UpdateStatusInput) (model.Task, error) {
	return model.Task{}, nil
}

func newTestServer(t *testing.T, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: string(model.EnvironmentProduction),
		Recognizer:  stubRecognizer{},
		TaskUseCase: stubUseCase{},
		ReadyCheck:  ready,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 1, Recognizer: stubRecognizer{}, TaskUseCase: stubUseCase{}}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode, Recognizer: stubRecognizer{}, TaskUseCase: stubUseCase{}}},
		{name: "missing recognizer", cfg: Config{Port: 1, Mode: gin.TestMode, TaskUseCase: stubUseCase{}}},
		{name: "missing use case", cfg: Config{Port: 1, Mode: gin.TestMode, Recognizer: stubRecognizer{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method, path, body string
		wantCode           int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/live", "", http.StatusOK},
		{http.MethodPost, "/api/v1/intents/recognize", `{"utterance":"help"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/intents/cache", "", http.StatusOK},
		{http.MethodPost, "/api/v1/utterances", `{"utterance":"help"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/tasks", "", http.StatusOK},
		{http.MethodGet, "/api/v1/tasks/missing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d body=%s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestReadyCheck_StorageDown(t *testing.T) {
	srv := newTestServer(t, func(context.Context) error { return errors.New("db closed") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("code = %d, want 503", w.Code)
	}
}
