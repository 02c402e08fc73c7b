package main

import (
	"log"
	"net/http"

	"studentdash/internal/config"
	"studentdash/internal/database"
	"studentdash/internal/handler"
	"studentdash/internal/service"
	"studentdash/internal/web"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize the database: ", err)
	}

	// Initialize services
	dashboardService := service.NewDashboardService(db)
	studentService := service.NewStudentService(db)
	gradeService := service.NewGradeService(db)
	attendanceService := service.NewAttendanceService(db)
	healthService := service.NewHealthService(db)

	// Initialize handlers
	r := handler.NewRouter(handler.Handlers{
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Student:    handler.NewStudentHandler(studentService),
		Grade:      handler.NewGradeHandler(gradeService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Health:     handler.NewHealthHandler(healthService),
		Static:     handler.NewStaticHandler(web.Static(cfg.StaticDir)),
	})

	addr := ":" + cfg.Port
	log.Printf("Server running on %s (%s store)", addr, cfg.DBDriver)
	err = http.ListenAndServe(addr, handler.Wrap(r, cfg.CORSOrigins))
	database.Close(db)
	log.Fatal("Server stopped: ", err)
}
