package records

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/internal/storage"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

const defaultPersistTimeout = 5 * time.Second

// Open loads the persisted snapshot from backend, or seeds the default
// fixture and persists it when nothing is stored yet. Any failure here is
// fatal for the caller; later persist failures are only logged.
func Open(ctx context.Context, backend storage.Backend, persistTimeout time.Duration, log logger.Logger) (*Store, error) {
	if persistTimeout <= 0 {
		persistTimeout = defaultPersistTimeout
	}

	s := &Store{
		backend: backend,
		timeout: persistTimeout,
		log:     log.With("records"),
	}

	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, errors.WrapFail(err, "load records")
	}

	if loaded != nil {
		s.data = loaded.Clone()
		s.log.Infof(
			"loaded %d users, %d courses, %d enrollments, %d grades",
			len(s.data.Users), len(s.data.Courses), len(s.data.Enrollments), len(s.data.Grades),
		)
		return s, nil
	}

	s.data = Fixture()
	err = backend.Save(ctx, s.data.Clone())
	if err != nil {
		return nil, errors.WrapFail(err, "persist default records")
	}

	s.log.Infof("seeded default records")
	return s, nil
}

// Store is the in-memory relational store. All methods are safe for
// concurrent use and return copies, never references into the store.
type Store struct {
	mu      sync.RWMutex
	data    models.Snapshot
	backend storage.Backend
	timeout time.Duration
	log     logger.Logger
}

// persist must be called with mu held for writing.
func (s *Store) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.backend.Save(ctx, s.data.Clone())
	if err != nil {
		s.log.Error(errors.WrapFail(err, "persist records"))
	}
}

func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Authenticate returns the first user, in insertion order, whose
// username and password both match exactly.
func (s *Store) Authenticate(username, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.data.Users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) AddUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Users = append(s.data.Users, user)
	s.persist()
}

// AddUserWithID stores user under the id newID picks from the current
// teacher and student counts. Counting and inserting happen under one lock,
// so concurrent signups never share an id.
func (s *Store) AddUserWithID(user models.User, newID func(teachers, students int) string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = newID(s.countByRole(models.RoleTeacher), s.countByRole(models.RoleStudent))
	s.data.Users = append(s.data.Users, user)
	s.persist()
	return user
}

func (s *Store) CountByRole(role models.Role) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countByRole(role)
}

func (s *Store) countByRole(role models.Role) int {
	count := 0
	for _, u := range s.data.Users {
		if u.Role == role {
			count++
		}
	}
	return count
}

// AssignTeacher is a no-op when the course does not exist.
func (s *Store) AssignTeacher(teacherID, courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.data.Courses, func(c models.Course) bool { return c.ID == courseID })
	if idx < 0 {
		return
	}

	s.data.Courses[idx].TeacherID = teacherID
	s.persist()
}

func (s *Store) IsEnrolled(studentID, courseID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enrollmentIndex(studentID, courseID) >= 0
}

func (s *Store) enrollmentIndex(studentID, courseID string) int {
	return slices.Index(s.data.Enrollments, models.Enrollment{StudentID: studentID, CourseID: courseID})
}

func (s *Store) Enroll(studentID, courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enrollmentIndex(studentID, courseID) >= 0 {
		return
	}

	s.data.Enrollments = append(s.data.Enrollments, models.Enrollment{StudentID: studentID, CourseID: courseID})
	s.persist()
}

func (s *Store) Unenroll(studentID, courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.enrollmentIndex(studentID, courseID)
	if idx < 0 {
		return
	}

	s.data.Enrollments = slices.Delete(s.data.Enrollments, idx, idx+1)
	s.persist()
}

func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user(id)
}

func (s *Store) user(id string) (models.User, bool) {
	idx := slices.IndexFunc(s.data.Users, func(u models.User) bool { return u.ID == id })
	if idx < 0 {
		return models.User{}, false
	}
	return s.data.Users[idx], true
}

func (s *Store) GetCourse(id string) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.course(id)
}

func (s *Store) course(id string) (models.Course, bool) {
	idx := slices.IndexFunc(s.data.Courses, func(c models.Course) bool { return c.ID == id })
	if idx < 0 {
		return models.Course{}, false
	}
	return s.data.Courses[idx], true
}

func (s *Store) ListStudents() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.data.Users, func(u models.User) bool { return u.Role == models.RoleStudent })
}

func (s *Store) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.data.Courses, nil)
}

func (s *Store) CoursesByTeacher(teacherID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.data.Courses, func(c models.Course) bool { return c.TeacherID == teacherID })
}

// CoursesForStudent joins enrollments to courses in enrollment order,
// skipping enrollments whose course no longer resolves.
func (s *Store) CoursesForStudent(studentID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]models.Course, 0)
	for _, e := range s.data.Enrollments {
		if e.StudentID != studentID {
			continue
		}
		if c, ok := s.course(e.CourseID); ok {
			courses = append(courses, c)
		}
	}
	return courses
}

// StudentsForCourse joins enrollments to users, keeping only students.
func (s *Store) StudentsForCourse(courseID string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]models.User, 0)
	for _, e := range s.data.Enrollments {
		if e.CourseID != courseID {
			continue
		}
		if u, ok := s.user(e.StudentID); ok && u.Role == models.RoleStudent {
			students = append(students, u)
		}
	}
	return students
}

func (s *Store) GradesForStudent(studentID string) []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.data.Grades, func(g models.Grade) bool { return g.StudentID == studentID })
}

func (s *Store) GradesForTeacher(teacherID string) []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.data.Grades, func(g models.Grade) bool { return g.TeacherID == teacherID })
}

func (s *Store) AllGrades() []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.data.Grades, nil)
}

func (s *Store) gradeIndex(studentID, courseID string) int {
	return slices.IndexFunc(s.data.Grades, func(g models.Grade) bool {
		return g.StudentID == studentID && g.CourseID == courseID
	})
}

// UpsertGrade updates score, note and teacher of the (student, course)
// grade in place, or appends a new one. It always persists.
func (s *Store) UpsertGrade(studentID, courseID string, score int, note, teacherID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertGrade(studentID, courseID, score, note, teacherID)
}

// UpsertGradeIfEnrolled is UpsertGrade guarded by the enrollment check, both
// under one lock. It returns false and changes nothing when the student is
// not enrolled in the course.
func (s *Store) UpsertGradeIfEnrolled(studentID, courseID string, score int, note, teacherID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enrollmentIndex(studentID, courseID) < 0 {
		return false
	}

	s.upsertGrade(studentID, courseID, score, note, teacherID)
	return true
}

func (s *Store) upsertGrade(studentID, courseID string, score int, note, teacherID string) {
	if idx := s.gradeIndex(studentID, courseID); idx >= 0 {
		g := &s.data.Grades[idx]
		g.Score = score
		g.Note = note
		g.TeacherID = teacherID
	} else {
		s.data.Grades = append(s.data.Grades, models.Grade{
			StudentID: studentID,
			CourseID:  courseID,
			Score:     score,
			Note:      note,
			TeacherID: teacherID,
		})
	}

	s.persist()
}

func (s *Store) DeleteGrade(studentID, courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gradeIndex(studentID, courseID)
	if idx < 0 {
		return
	}

	s.data.Grades = slices.Delete(s.data.Grades, idx, idx+1)
	s.persist()
}

// filter copies the matching items into a fresh, never nil, slice.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}
