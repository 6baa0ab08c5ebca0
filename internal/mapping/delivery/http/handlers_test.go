package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/OlegGirko/boss-launcher-webhook/config"
	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	mappingHTTP "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/delivery/http"
	"github.com/OlegGirko/boss-launcher-webhook/internal/middleware"
	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase satisfies mapping.UseCase with overridable behaviour per
// test.
type mockUseCase struct {
	createFn         func(ctx context.Context, sc model.Scope, input mapping.CreateMappingInput) (mapping.CreateMappingOutput, error)
	detailFn         func(ctx context.Context, id int64) (mapping.MappingOutput, error)
	updateFn         func(ctx context.Context, input mapping.UpdateMappingInput) (mapping.UpdateMappingOutput, error)
	triggerFn        func(ctx context.Context, id int64) (mapping.TriggerOutput, error)
	findFn           func(ctx context.Context, key mapping.TargetKey) (mapping.FindOutput, error)
	updateOrCreateFn func(ctx context.Context, sc model.Scope, key mapping.TargetKey, input mapping.CreateMappingInput) (mapping.UpdateOrCreateOutput, error)
	groupedListFn    func(ctx context.Context, sc model.Scope) (mapping.GroupedListOutput, error)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input mapping.CreateMappingInput) (mapping.CreateMappingOutput, error) {
	if m.createFn != nil {
		return m.createFn(ctx, sc, input)
	}
	return mapping.CreateMappingOutput{}, nil
}

func (m *mockUseCase) List(ctx context.Context, input mapping.ListMappingsInput) (mapping.ListMappingsOutput, error) {
	return mapping.ListMappingsOutput{Limit: input.Limit, Offset: input.Offset}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id int64) (mapping.MappingOutput, error) {
	if m.detailFn != nil {
		return m.detailFn(ctx, id)
	}
	return mapping.MappingOutput{}, nil
}

func (m *mockUseCase) Update(ctx context.Context, input mapping.UpdateMappingInput) (mapping.UpdateMappingOutput, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, input)
	}
	return mapping.UpdateMappingOutput{}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) error { return nil }

func (m *mockUseCase) Trigger(ctx context.Context, id int64) (mapping.TriggerOutput, error) {
	if m.triggerFn != nil {
		return m.triggerFn(ctx, id)
	}
	return mapping.TriggerOutput{}, nil
}

func (m *mockUseCase) FindByTarget(ctx context.Context, key mapping.TargetKey) (mapping.FindOutput, error) {
	if m.findFn != nil {
		return m.findFn(ctx, key)
	}
	return mapping.FindOutput{}, nil
}

func (m *mockUseCase) UpdateOrCreateByTarget(ctx context.Context, sc model.Scope, key mapping.TargetKey, input mapping.CreateMappingInput) (mapping.UpdateOrCreateOutput, error) {
	if m.updateOrCreateFn != nil {
		return m.updateOrCreateFn(ctx, sc, key, input)
	}
	return mapping.UpdateOrCreateOutput{}, nil
}

func (m *mockUseCase) TriggerByTarget(ctx context.Context, key mapping.TargetKey) (mapping.TriggerOutput, error) {
	return mapping.TriggerOutput{}, nil
}

func (m *mockUseCase) GroupedList(ctx context.Context, sc model.Scope) (mapping.GroupedListOutput, error) {
	if m.groupedListFn != nil {
		return m.groupedListFn(ctx, sc)
	}
	return mapping.GroupedListOutput{Groups: map[string]mapping.MappingGroup{}}, nil
}

func (m *mockUseCase) ListRevisions(ctx context.Context, input mapping.ListRevisionsInput) (mapping.ListRevisionsOutput, error) {
	return mapping.ListRevisionsOutput{}, nil
}

func (m *mockUseCase) RevisionDetail(ctx context.Context, id int64) (mapping.RevisionOutput, error) {
	return mapping.RevisionOutput{}, nil
}

func (m *mockUseCase) UpdateRevision(ctx context.Context, input mapping.UpdateRevisionInput) (mapping.RevisionOutput, error) {
	return mapping.RevisionOutput{}, nil
}

func (m *mockUseCase) ListBuildServices(ctx context.Context) (mapping.ListBuildServicesOutput, error) {
	return mapping.ListBuildServicesOutput{}, nil
}

func (m *mockUseCase) BuildServiceDetail(ctx context.Context, id int64) (mapping.BuildServiceOutput, error) {
	return mapping.BuildServiceOutput{}, nil
}

var testAuth = config.AuthConfig{
	Tokens:   map[string]string{"alice-token": "alice"},
	LoginURL: "/login",
}

func newRouter(t *testing.T, uc mapping.UseCase, landing mappingHTTP.LandingConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := middleware.New(&mockLogger{}, testAuth)
	h := mappingHTTP.New(&mockLogger{}, uc, landing)

	r := gin.New()
	mappingHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	mappingHTTP.RegisterLanding(r, h, mw)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCreateHandler(t *testing.T) {
	t.Run("passes caller scope to the use case", func(t *testing.T) {
		var gotScope model.Scope
		uc := &mockUseCase{
			createFn: func(ctx context.Context, sc model.Scope, input mapping.CreateMappingInput) (mapping.CreateMappingOutput, error) {
				gotScope = sc
				return mapping.CreateMappingOutput{Mapping: model.WebHookMapping{ID: 1, User: sc.Username}}, nil
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/webhookmappings",
			strings.NewReader(`{"repourl":"https://git.example/r.git","package":"zlib","project":"p","obs":1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer alice-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if gotScope.Username != "alice" {
			t.Errorf("scope = %+v, want alice", gotScope)
		}
	})

	t.Run("rejects missing token", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{}, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/webhookmappings", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("validation errors land in the errors field", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, sc model.Scope, input mapping.CreateMappingInput) (mapping.CreateMappingOutput, error) {
				return mapping.CreateMappingOutput{}, mapping.ValidationErrors{"repourl": "repourl is required"}
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/webhookmappings", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer alice-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		body := decodeBody(t, w)
		errs, ok := body["errors"].(map[string]any)
		if !ok || errs["repourl"] == nil {
			t.Errorf("body = %v", body)
		}
	})
}

func TestTriggerHandler(t *testing.T) {
	t.Run("put on mapping id triggers", func(t *testing.T) {
		var gotID int64
		uc := &mockUseCase{
			triggerFn: func(ctx context.Context, id int64) (mapping.TriggerOutput, error) {
				gotID = id
				return mapping.TriggerOutput{Message: "build queued for p/zlib@obs"}, nil
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/v1/webhookmappings/7", nil)
		req.Header.Set("Authorization", "Bearer alice-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if gotID != 7 {
			t.Errorf("id = %d, want 7", gotID)
		}
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		if !strings.Contains(data["message"].(string), "queued") {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("mapping not found", func(t *testing.T) {
		uc := &mockUseCase{
			triggerFn: func(ctx context.Context, id int64) (mapping.TriggerOutput, error) {
				return mapping.TriggerOutput{}, mapping.ErrMappingNotFound
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/v1/webhookmappings/7", nil)
		req.Header.Set("Authorization", "Bearer alice-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		var gotInput mapping.UpdateMappingInput
		uc := &mockUseCase{
			updateFn: func(ctx context.Context, input mapping.UpdateMappingInput) (mapping.UpdateMappingOutput, error) {
				gotInput = input
				return mapping.UpdateMappingOutput{Mapping: model.WebHookMapping{ID: input.ID}}, nil
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/v1/webhookmappings/3",
			strings.NewReader(`{"branch":"devel","revision":"abc123","tag":""}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer alice-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if gotInput.ID != 3 {
			t.Errorf("id = %d", gotInput.ID)
		}
		if gotInput.Branch == nil || *gotInput.Branch != "devel" {
			t.Errorf("branch = %v", gotInput.Branch)
		}
		if gotInput.RepoURL != nil || gotInput.Build != nil {
			t.Errorf("absent fields bound: %+v", gotInput)
		}
		if gotInput.Revision == nil || *gotInput.Revision != "abc123" {
			t.Errorf("revision = %v", gotInput.Revision)
		}
		// empty string is present, not absent
		if gotInput.Tag == nil || *gotInput.Tag != "" {
			t.Errorf("tag = %v", gotInput.Tag)
		}
	})
}

func TestFindHandler(t *testing.T) {
	t.Run("passes the path triple", func(t *testing.T) {
		var gotKey mapping.TargetKey
		uc := &mockUseCase{
			findFn: func(ctx context.Context, key mapping.TargetKey) (mapping.FindOutput, error) {
				gotKey = key
				return mapping.FindOutput{Found: false}, nil
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/find/obs/home:alice/zlib", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		want := mapping.TargetKey{OBSName: "obs", Project: "home:alice", Package: "zlib"}
		if gotKey != want {
			t.Errorf("key = %+v, want %+v", gotKey, want)
		}
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		if data["found"] != false {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("put without body creates for caller", func(t *testing.T) {
		var gotScope model.Scope
		uc := &mockUseCase{
			updateOrCreateFn: func(ctx context.Context, sc model.Scope, key mapping.TargetKey, input mapping.CreateMappingInput) (mapping.UpdateOrCreateOutput, error) {
				gotScope = sc
				return mapping.UpdateOrCreateOutput{Created: true, Message: "webhook mapping created"}, nil
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/v1/find/obs/home:alice/zlib", nil)
		req.Header.Set("Authorization", "Bearer alice-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if gotScope.Username != "alice" {
			t.Errorf("scope = %+v", gotScope)
		}
	})
}

func TestLandingHandler(t *testing.T) {
	t.Run("anonymous visitor redirected when not public", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{}, mappingHTTP.LandingConfig{Public: false, LoginURL: "/login"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("status = %d, want 302", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Errorf("location = %q", loc)
		}
	})

	t.Run("public landing serves grouped listing", func(t *testing.T) {
		uc := &mockUseCase{
			groupedListFn: func(ctx context.Context, sc model.Scope) (mapping.GroupedListOutput, error) {
				return mapping.GroupedListOutput{Groups: map[string]mapping.MappingGroup{
					"mer:core": {Official: true, OBSWebURL: "https://obs.example"},
				}}, nil
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{Public: true})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		projects := data["projects"].(map[string]any)
		if projects["mer:core"] == nil {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("authenticated visitor sees listing even when not public", func(t *testing.T) {
		called := false
		uc := &mockUseCase{
			groupedListFn: func(ctx context.Context, sc model.Scope) (mapping.GroupedListOutput, error) {
				called = true
				if sc.Username != "alice" {
					t.Errorf("scope = %+v", sc)
				}
				return mapping.GroupedListOutput{Groups: map[string]mapping.MappingGroup{}}, nil
			},
		}
		r := newRouter(t, uc, mappingHTTP.LandingConfig{Public: false, LoginURL: "/login"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer alice-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !called {
			t.Error("grouped listing not invoked")
		}
	})
}
