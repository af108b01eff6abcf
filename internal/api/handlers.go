package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/internal/router"
	"github.com/nikmy/classbook/internal/wire"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

func New(store RecordStore, log logger.Logger) *Handlers {
	return &Handlers{
		store:    store,
		validate: newValidator(),
		log:      log.With("api"),
	}
}

type Handlers struct {
	store    RecordStore
	validate *validator.Validate
	log      logger.Logger
}

func (h *Handlers) sendError(status int, msg string) *wire.Response {
	return wire.JSON(status, messageResponse{Success: false, Message: msg})
}

// rejectBody answers a body that failed to decode with 400 and the
// client-facing reason.
func (h *Handlers) rejectBody(endpoint string, err error) *wire.Response {
	h.log.Warn(errors.WrapFailf(err, "decode %s request", endpoint))

	msg := msgInvalidJSON
	var decodeErr *decodeError
	if errors.As(err, &decodeErr) {
		msg = decodeErr.message
	}
	return h.sendError(http.StatusBadRequest, msg)
}

func (h *Handlers) handleLogin(req *wire.Request, _ router.Params) *wire.Response {
	var body loginRequest
	if err := h.decode(req, &body); err != nil {
		return h.rejectBody("login", err)
	}

	user, ok := h.store.Authenticate(*body.Username, *body.Password)
	if !ok {
		h.log.Infof("failed login for %q", *body.Username)
		return wire.JSON(http.StatusUnauthorized, authResponse{Success: false, Message: "Invalid credentials"})
	}

	return wire.JSON(http.StatusOK, authResponse{Success: true, User: summarize(user)})
}

func (h *Handlers) handleSignup(req *wire.Request, _ router.Params) *wire.Response {
	var body signupRequest
	if err := h.decode(req, &body); err != nil {
		return h.rejectBody("signup", err)
	}

	user := models.User{
		Username:    body.Username,
		Password:    body.Password,
		Role:        body.Role,
		Name:        body.FirstName + " " + body.LastName,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		DateOfBirth: body.DateOfBirth,
		Email:       body.Email,
	}
	user = h.store.AddUserWithID(user, func(teachers, students int) string {
		if body.Role == models.RoleTeacher {
			return teacherID(teachers)
		}
		return studentID(body.FirstName, body.LastName, students)
	})

	if err := h.attachCourse(user, body.CourseID); err != nil {
		h.log.Warn(errors.WrapFailf(err, "attach course to new user %s", user.ID))
	}

	return wire.JSON(http.StatusCreated, authResponse{Success: true, User: summarize(user)})
}

// attachCourse assigns a new teacher to, or enrolls a new student in, the
// course picked at signup. Its failure never fails the signup.
func (h *Handlers) attachCourse(user models.User, rawCourseID json.RawMessage) error {
	if len(rawCourseID) == 0 || string(rawCourseID) == "null" {
		return nil
	}

	var courseID string
	err := json.Unmarshal(rawCourseID, &courseID)
	if err != nil {
		return errors.WrapFail(err, "parse courseId")
	}
	if courseID == "" {
		return nil
	}

	if _, ok := h.store.GetCourse(courseID); !ok {
		return errors.Errorf("course %q does not exist", courseID)
	}

	if user.Role == models.RoleTeacher {
		h.store.AssignTeacher(user.ID, courseID)
	} else {
		h.store.Enroll(user.ID, courseID)
	}
	return nil
}

func teacherID(teachers int) string {
	return fmt.Sprintf("T%03d", teachers+1)
}

func studentID(firstName, lastName string, students int) string {
	return initial(firstName) + initial(lastName) + fmt.Sprintf("%03d", students+1)
}

func initial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}

func (h *Handlers) handleGetCourses(*wire.Request, router.Params) *wire.Response {
	return wire.JSON(http.StatusOK, h.courseViews(h.store.ListCourses()))
}

func (h *Handlers) handleGetStudents(*wire.Request, router.Params) *wire.Response {
	students := h.store.ListStudents()

	views := make([]studentSummary, 0, len(students))
	for _, s := range students {
		views = append(views, studentSummary{ID: s.ID, Username: s.Username})
	}
	return wire.JSON(http.StatusOK, views)
}

func (h *Handlers) handleGetStudentCourses(_ *wire.Request, params router.Params) *wire.Response {
	return wire.JSON(http.StatusOK, h.courseViews(h.store.CoursesForStudent(params["studentId"])))
}

func (h *Handlers) handleGetTeacherCourses(_ *wire.Request, params router.Params) *wire.Response {
	return wire.JSON(http.StatusOK, h.courseViews(h.store.CoursesByTeacher(params["teacherId"])))
}

func (h *Handlers) handleGetCourseStudents(_ *wire.Request, params router.Params) *wire.Response {
	students := h.store.StudentsForCourse(params["courseId"])

	views := make([]courseStudent, 0, len(students))
	for _, s := range students {
		views = append(views, courseStudent{ID: s.ID, Username: s.Username, Name: s.Name, Role: s.Role})
	}
	return wire.JSON(http.StatusOK, views)
}

func (h *Handlers) handleGetStudentGrades(_ *wire.Request, params router.Params) *wire.Response {
	grades := h.store.GradesForStudent(params["studentId"])

	views := make([]studentGrade, 0, len(grades))
	for _, g := range grades {
		views = append(views, studentGrade{
			CourseID:   g.CourseID,
			CourseName: h.courseName(g.CourseID),
			Score:      g.Score,
			Note:       g.Note,
			TeacherID:  g.TeacherID,
		})
	}
	return wire.JSON(http.StatusOK, views)
}

func (h *Handlers) handleGetTeacherGrades(_ *wire.Request, params router.Params) *wire.Response {
	return wire.JSON(http.StatusOK, h.teacherGrades(h.store.GradesForTeacher(params["teacherId"])))
}

func (h *Handlers) handleGetAllGrades(*wire.Request, router.Params) *wire.Response {
	return wire.JSON(http.StatusOK, h.teacherGrades(h.store.AllGrades()))
}

func (h *Handlers) handleEnroll(req *wire.Request, _ router.Params) *wire.Response {
	var body enrollmentRequest
	if err := h.decode(req, &body); err != nil {
		return h.rejectBody("enroll", err)
	}

	h.store.Enroll(*body.StudentID, *body.CourseID)
	return wire.JSON(http.StatusOK, messageResponse{Success: true, Message: "Enrolled successfully"})
}

func (h *Handlers) handleUnenroll(req *wire.Request, _ router.Params) *wire.Response {
	var body enrollmentRequest
	if err := h.decode(req, &body); err != nil {
		return h.rejectBody("unenroll", err)
	}

	h.store.Unenroll(*body.StudentID, *body.CourseID)
	return wire.JSON(http.StatusOK, messageResponse{Success: true, Message: "Unenrolled successfully"})
}

func (h *Handlers) handleAddGrade(req *wire.Request, _ router.Params) *wire.Response {
	var body gradeRequest
	if err := h.decode(req, &body); err != nil {
		return h.rejectBody("add grade", err)
	}

	if !h.store.UpsertGradeIfEnrolled(*body.StudentID, *body.CourseID, *body.Score, body.Note, *body.TeacherID) {
		return h.sendError(http.StatusBadRequest, "Student is not enrolled in this course")
	}

	return wire.JSON(http.StatusOK, messageResponse{Success: true, Message: "Grade added/updated successfully"})
}

func (h *Handlers) handleDeleteGrade(req *wire.Request, _ router.Params) *wire.Response {
	var body enrollmentRequest
	if err := h.decode(req, &body); err != nil {
		return h.rejectBody("delete grade", err)
	}

	h.store.DeleteGrade(*body.StudentID, *body.CourseID)
	return wire.JSON(http.StatusOK, messageResponse{Success: true, Message: "Grade deleted successfully"})
}
