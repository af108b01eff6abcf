package api

import "github.com/nikmy/classbook/internal/models"

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=api

// RecordStore is the part of the record store the handlers use.
type RecordStore interface {
	Authenticate(username, password string) (models.User, bool)
	AddUserWithID(user models.User, newID func(teachers, students int) string) models.User
	AssignTeacher(teacherID, courseID string)

	Enroll(studentID, courseID string)
	Unenroll(studentID, courseID string)

	GetUser(id string) (models.User, bool)
	GetCourse(id string) (models.Course, bool)
	ListStudents() []models.User
	ListCourses() []models.Course
	CoursesByTeacher(teacherID string) []models.Course
	CoursesForStudent(studentID string) []models.Course
	StudentsForCourse(courseID string) []models.User

	GradesForStudent(studentID string) []models.Grade
	GradesForTeacher(teacherID string) []models.Grade
	AllGrades() []models.Grade
	UpsertGradeIfEnrolled(studentID, courseID string, score int, note, teacherID string) bool
	DeleteGrade(studentID, courseID string)
}
