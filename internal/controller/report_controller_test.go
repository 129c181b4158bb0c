package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logreport/config"
	"logreport/internal/controller"
	"logreport/internal/dto"
	"logreport/internal/ingest"
	"logreport/internal/parser"
	"logreport/internal/service"
)

const sampleLog = "2024-01-01 10:00:00 INFO Started\n" +
	"2024-01-01 10:00:05 ERROR Crashed\n" +
	"2024-01-01 10:00:07 INFO Done\n"

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.log"), []byte(sampleLog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.log"), []byte("not a log line\n"), 0o644))

	cfg := &config.Config{
		Ingest: config.IngestConfig{BaseDir: dir},
		Report: config.ReportConfig{LevelHeader: "Level", CountHeader: "Count"},
	}
	svc := service.NewReportService(cfg, ingest.NewLoader(cfg, parser.NewLineParser()))

	router := gin.New()
	controller.RegisterReportRoutes(router, controller.NewReportController(svc, cfg))
	return router
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetReport_JSON(t *testing.T) {
	w := get(newRouter(t), "/api/v1/report?file=app.log&level=info")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Entries)
	assert.Equal(t, "INFO", resp.Level)
	assert.Equal(t, []string{"2024-01-01 10:00:00 INFO Started", "2024-01-01 10:00:07 INFO Done"}, resp.Lines)
}

func TestGetReport_Table(t *testing.T) {
	w := get(newRouter(t), "/api/v1/report?file=app.log&format=table")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Level | Count\n-------------\nINFO  |     2\nERROR |     1\n-------------\n", w.Body.String())
}

func TestGetReport_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{name: "Missing File Param", target: "/api/v1/report", status: http.StatusBadRequest},
		{name: "Path Traversal", target: "/api/v1/report?file=../etc/passwd", status: http.StatusBadRequest},
		{name: "Absolute Path", target: "/api/v1/report?file=/etc/passwd", status: http.StatusBadRequest},
		{name: "Unknown Format", target: "/api/v1/report?file=app.log&format=xml", status: http.StatusBadRequest},
		{name: "File Not Found", target: "/api/v1/report?file=missing.log", status: http.StatusNotFound},
		{name: "Malformed Log", target: "/api/v1/report?file=bad.log", status: http.StatusUnprocessableEntity},
	}

	router := newRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, tt.target)
			assert.Equal(t, tt.status, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}
