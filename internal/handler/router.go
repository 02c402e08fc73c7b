package handler

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Handlers struct {
	Dashboard  *DashboardHandler
	Student    *StudentHandler
	Grade      *GradeHandler
	Attendance *AttendanceHandler
	Health     *HealthHandler
	Static     *StaticHandler
}

func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Static.Index).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", h.Health.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/dashboard", h.Dashboard.GetDashboard).Methods(http.MethodGet)
	r.HandleFunc("/api/students", h.Student.ListStudents).Methods(http.MethodGet)
	r.HandleFunc("/api/grades", h.Grade.ListGrades).Methods(http.MethodGet)
	r.HandleFunc("/api/attendance", h.Attendance.ListAttendance).Methods(http.MethodGet)

	return r
}

// Wrap adds CORS, panic recovery and access logging around the router.
func Wrap(next http.Handler, allowedOrigins []string) http.Handler {
	h := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
	)(next)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	return handlers.LoggingHandler(os.Stdout, h)
}
