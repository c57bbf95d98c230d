package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-console/internal/app"
	"github.com/quillhq/quill-console/internal/database/testutil"
	"github.com/quillhq/quill-console/internal/probe"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svcs, err := BuildServices(db, probe.New(0))
	require.NoError(t, err)

	cfg, err := app.LoadConfig(t.TempDir())
	require.NoError(t, err)

	r, err := NewRouter(cfg, svcs)
	require.NoError(t, err)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "quill_")
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/catalog/sources", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload := decodeBody(t, w)
	require.Len(t, payload["data"], 9)

	w = doJSON(t, r, http.MethodGet, "/api/catalog/storage", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload = decodeBody(t, w)
	require.Len(t, payload["data"], 7)

	w = doJSON(t, r, http.MethodGet, "/api/catalog/widgets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload = decodeBody(t, w)
	require.Len(t, payload["data"], 5)

	w = doJSON(t, r, http.MethodGet, "/api/catalog/sources/mqtt", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/catalog/sources/bacnet", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	payload = decodeBody(t, w)
	errInfo := payload["error"].(map[string]any)
	require.Equal(t, "UNKNOWN_TYPE", errInfo["code"])

	w = doJSON(t, r, http.MethodGet, "/api/catalog/sources/tcp/form", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload = decodeBody(t, w)
	data := payload["data"].(map[string]any)
	require.Equal(t, "tcp", data["type"])
	require.Len(t, data["fields"], 3)
}

func TestConnectionLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// Validation failure carries per-field messages and persists nothing.
	w := doJSON(t, r, http.MethodPost, "/api/connections", map[string]any{
		"name":        "Broken",
		"source_type": "mqtt",
		"config":      map[string]any{"port": 70000},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	payload := decodeBody(t, w)
	errInfo := payload["error"].(map[string]any)
	require.Equal(t, "VALIDATION_FAILED", errInfo["code"])
	fields := errInfo["fields"].(map[string]any)
	require.Contains(t, fields, "brokerAddress")
	require.Contains(t, fields, "port")

	w = doJSON(t, r, http.MethodGet, "/api/connections", nil)
	payload = decodeBody(t, w)
	require.Empty(t, payload["data"])

	// Successful create returns the stored record with a nested config object.
	w = doJSON(t, r, http.MethodPost, "/api/connections", map[string]any{
		"name":        "Plant MQTT",
		"source_type": "mqtt",
		"config": map[string]any{
			"brokerAddress": "mqtt.plant.local",
			"port":          1883,
			"topic":         "sensors/#",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	payload = decodeBody(t, w)
	data := payload["data"].(map[string]any)
	id := data["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "pending", data["status"])
	config := data["config"].(map[string]any)
	require.Equal(t, "mqtt.plant.local", config["brokerAddress"])

	w = doJSON(t, r, http.MethodPost, "/api/connections/"+id+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload = decodeBody(t, w)
	require.Equal(t, "active", payload["data"].(map[string]any)["status"])

	w = doJSON(t, r, http.MethodDelete, "/api/connections/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/connections/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorageDefaultGuardOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/storage", map[string]any{
		"name":         "Primary DB",
		"storage_type": "postgresql",
		"configuration": map[string]any{
			"host":     "db.local",
			"port":     5432,
			"database": "quill",
			"user":     "quill",
			"password": "secret",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	payload := decodeBody(t, w)
	data := payload["data"].(map[string]any)
	id := data["id"].(string)
	require.Equal(t, true, data["is_default"])

	w = doJSON(t, r, http.MethodDelete, "/api/storage/"+id, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	payload = decodeBody(t, w)
	errInfo := payload["error"].(map[string]any)
	require.Equal(t, "DEFAULT_STORAGE_PROTECTED", errInfo["code"])

	w = doJSON(t, r, http.MethodGet, "/api/storage/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardSummaryOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload := decodeBody(t, w)
	data := payload["data"].(map[string]any)
	require.EqualValues(t, 0, data["total_connections"])
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	payload := decodeBody(t, w)
	require.Equal(t, false, payload["success"])
}
