package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specpkg "github.com/teamform/teamform/api"
	"github.com/teamform/teamform/internal/api"
	"github.com/teamform/teamform/internal/api/handler"
	"github.com/teamform/teamform/internal/api/middleware"
	"github.com/teamform/teamform/internal/formation"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	openapi, err := handler.NewOpenAPIHandler(specpkg.OpenAPISpec)
	require.NoError(t, err)

	return api.NewRouter(api.RouterDeps{
		Version:           "test",
		Engine:            formation.New(formation.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))),
		AllowedExtensions: []string{".tsv"},
		MaxUploadBytes:    1 << 20,
		RandSource:        handler.NewRandSource(1),
		OpenAPI:           openapi,
	})
}

func TestRouter_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_OpenAPIPathsAreRouted(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	for path, methods := range doc.Paths {
		for method := range methods {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if method == "post" {
				req = httptest.NewRequest(http.MethodPost, path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.NotEqual(t, http.StatusNotFound, rec.Code, "%s %s is documented but not routed", method, path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "%s %s is documented but not routed", method, path)
		}
	}
}

func TestRouter_AssignRejectsGet(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/student-projects/assign", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_WithoutEngineHasNoAssignRoute(t *testing.T) {
	router := api.NewRouter(api.RouterDeps{Version: "test"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/student-projects/assign", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
