package api

import "github.com/nikmy/classbook/internal/models"

const unknownName = "Unknown"

type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authResponse struct {
	Success bool         `json:"success"`
	User    *userSummary `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type courseView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
	Description string `json:"description"`
}

type studentSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type courseStudent struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type studentGrade struct {
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	Score      int    `json:"score"`
	Note       string `json:"note"`
	TeacherID  string `json:"teacherId"`
}

type teacherGrade struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	CourseID    string `json:"courseId"`
	CourseName  string `json:"courseName"`
	Score       int    `json:"score"`
	Note        string `json:"note"`
	TeacherID   string `json:"teacherId"`
}

func summarize(u models.User) *userSummary {
	return &userSummary{ID: u.ID, Username: u.Username, Role: u.Role}
}

func (h *Handlers) courseViews(courses []models.Course) []courseView {
	views := make([]courseView, 0, len(courses))
	for _, c := range courses {
		teacherName := unknownName
		if t, ok := h.store.GetUser(c.TeacherID); ok {
			teacherName = t.Username
		}

		views = append(views, courseView{
			ID:          c.ID,
			Name:        c.Name,
			TeacherID:   c.TeacherID,
			TeacherName: teacherName,
			Description: c.Description,
		})
	}
	return views
}

func (h *Handlers) courseName(id string) string {
	if c, ok := h.store.GetCourse(id); ok {
		return c.Name
	}
	return unknownName
}

func (h *Handlers) studentName(id string) string {
	if u, ok := h.store.GetUser(id); ok {
		return u.Name
	}
	return unknownName
}

func (h *Handlers) teacherGrades(grades []models.Grade) []teacherGrade {
	views := make([]teacherGrade, 0, len(grades))
	for _, g := range grades {
		views = append(views, teacherGrade{
			StudentID:   g.StudentID,
			StudentName: h.studentName(g.StudentID),
			CourseID:    g.CourseID,
			CourseName:  h.courseName(g.CourseID),
			Score:       g.Score,
			Note:        g.Note,
			TeacherID:   g.TeacherID,
		})
	}
	return views
}
