package api

import (
	"net/http"

	"github.com/nikmy/classbook/internal/router"
	"github.com/nikmy/classbook/pkg/logger"
)

func (h *Handlers) Routes() []router.Route {
	return []router.Route{
		{Name: "login", Method: http.MethodPost, Pattern: "/api/login", Handler: h.handleLogin},
		{Name: "signup", Method: http.MethodPost, Pattern: "/api/signup", Handler: h.handleSignup},
		{Name: "getCourses", Method: http.MethodGet, Pattern: "/api/courses", Handler: h.handleGetCourses},
		{Name: "getStudents", Method: http.MethodGet, Pattern: "/api/students", Handler: h.handleGetStudents},
		{Name: "getStudentCourses", Method: http.MethodGet, Pattern: "/api/students/{studentId}/courses", Handler: h.handleGetStudentCourses},
		{Name: "getCourseStudents", Method: http.MethodGet, Pattern: "/api/courses/{courseId}/students", Handler: h.handleGetCourseStudents},
		{Name: "getStudentGrades", Method: http.MethodGet, Pattern: "/api/grades/{studentId}", Handler: h.handleGetStudentGrades},
		{Name: "getTeacherGrades", Method: http.MethodGet, Pattern: "/api/teacher/{teacherId}/grades", Handler: h.handleGetTeacherGrades},
		{Name: "enroll", Method: http.MethodPost, Pattern: "/api/enroll", Handler: h.handleEnroll},
		{Name: "unenroll", Method: http.MethodPost, Pattern: "/api/unenroll", Handler: h.handleUnenroll},
		{Name: "addGrade", Method: http.MethodPost, Pattern: "/api/grades", Handler: h.handleAddGrade},
		{Name: "deleteGrade", Method: http.MethodDelete, Pattern: "/api/grades", Handler: h.handleDeleteGrade},

		{Name: "getAllGrades", Method: http.MethodGet, Pattern: "/api/grades", Handler: h.handleGetAllGrades},
		{Name: "getTeacherCourses", Method: http.MethodGet, Pattern: "/api/teacher/{teacherId}/courses", Handler: h.handleGetTeacherCourses},
	}
}

// NewRouter wires the handlers over store into a ready router.
func NewRouter(store RecordStore, log logger.Logger) (*router.Router, error) {
	return router.New(log, New(store, log).Routes()...)
}
