package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentdash/internal/config"
	"studentdash/internal/database"
	"studentdash/internal/handler"
	"studentdash/internal/service"
	"studentdash/internal/web"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := database.InitDB(&config.Config{
		DBDriver:       config.DriverSQLite,
		DBPath:         filepath.Join(t.TempDir(), "students.db"),
		DBMaxOpenConns: 4,
		LogLevel:       "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	r := handler.NewRouter(handler.Handlers{
		Dashboard:  handler.NewDashboardHandler(service.NewDashboardService(db)),
		Student:    handler.NewStudentHandler(service.NewStudentService(db)),
		Grade:      handler.NewGradeHandler(service.NewGradeService(db)),
		Attendance: handler.NewAttendanceHandler(service.NewAttendanceService(db)),
		Health:     handler.NewHealthHandler(service.NewHealthService(db)),
		Static:     handler.NewStaticHandler(web.Static("")),
	})

	srv := httptest.NewServer(handler.Wrap(r, []string{"http://localhost:3000"}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRouterSeededEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"total_students":3,"avg_score":85.2,"attendance_rate":50.0}`, body)

	resp, body = get(t, srv, "/api/students")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"id":1,"name":"Alice Johnson","student_id":"STU001","class":"Grade 10","avg_score":85.5},
		{"id":2,"name":"Bob Martinez","student_id":"STU002","class":"Grade 11","avg_score":92},
		{"id":3,"name":"Carol White","student_id":"STU003","class":"Grade 10","avg_score":78}
	]`, body)

	resp, body = get(t, srv, "/api/grades")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"id":3,"student_id":3,"subject":"History","score":78,"grade":"C","date":"2023-10-03","student_name":"Carol White"},
		{"id":2,"student_id":2,"subject":"Science","score":92,"grade":"A","date":"2023-10-02","student_name":"Bob Martinez"},
		{"id":1,"student_id":1,"subject":"Math","score":85.5,"grade":"B","date":"2023-10-01","student_name":"Alice Johnson"}
	]`, body)

	resp, body = get(t, srv, "/api/attendance")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"id":2,"student_id":2,"date":"2023-10-02","status":"absent","subject":"Science","student_name":"Bob Martinez"},
		{"id":1,"student_id":1,"date":"2023-10-01","status":"present","subject":"Math","student_name":"Alice Johnson"}
	]`, body)

	resp, body = get(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestRouterServesIndex(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Student Dashboard")

	resp, _ = get(t, srv, "/missing.html")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouterRejectsWrites(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/students", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouterCORS(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
