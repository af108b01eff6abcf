package records

import "github.com/nikmy/classbook/internal/models"

// Fixture is the data a fresh installation starts with. Every course has
// one teacher, student IDs follow the signup initials scheme.
func Fixture() models.Snapshot {
	teacher := func(id, username, name, first, last string) models.User {
		return models.User{
			ID:        id,
			Username:  username,
			Password:  "teacher123",
			Role:      models.RoleTeacher,
			Name:      name,
			FirstName: first,
			LastName:  last,
			Email:     username + "@school.edu",
		}
	}
	student := func(id, username, first, last, born string) models.User {
		return models.User{
			ID:          id,
			Username:    username,
			Password:    username + "123",
			Role:        models.RoleStudent,
			Name:        first + " " + last,
			FirstName:   first,
			LastName:    last,
			DateOfBirth: born,
			Email:       username + "@school.edu",
		}
	}

	return models.Snapshot{
		Users: []models.User{
			teacher("T001", "mrsmith", "Mr. Smith", "Mr", "Smith"),
			teacher("T002", "msjones", "Ms. Jones", "Ms", "Jones"),
			teacher("T003", "mrwilson", "Mr. Wilson", "Mr", "Wilson"),
			teacher("T004", "msdavis", "Ms. Davis", "Ms", "Davis"),
			student("JD001", "john", "John", "Doe", "2005-03-15"),
			student("JS001", "jane", "Jane", "Smith", "2005-07-22"),
			student("BJ001", "bob", "Bob", "Johnson", "2005-11-08"),
		},
		Courses: []models.Course{
			{ID: "C001", Name: "Mathematics", TeacherID: "T001", Description: "Algebra, Calculus, and Geometry"},
			{ID: "C002", Name: "English", TeacherID: "T002", Description: "Literature, Grammar, and Writing"},
			{ID: "C003", Name: "Science", TeacherID: "T003", Description: "Physics, Chemistry, and Biology"},
			{ID: "C004", Name: "History", TeacherID: "T004", Description: "World History and Civics"},
			{ID: "C005", Name: "Computer Science", TeacherID: "T001", Description: "Programming and Web Development"},
		},
		Enrollments: []models.Enrollment{
			{StudentID: "JD001", CourseID: "C001"},
			{StudentID: "JD001", CourseID: "C002"},
			{StudentID: "JD001", CourseID: "C005"},
			{StudentID: "JS001", CourseID: "C001"},
			{StudentID: "JS001", CourseID: "C002"},
			{StudentID: "JS001", CourseID: "C003"},
			{StudentID: "BJ001", CourseID: "C001"},
			{StudentID: "BJ001", CourseID: "C004"},
		},
		Grades: []models.Grade{
			{StudentID: "JD001", CourseID: "C001", Score: 85, Note: "Good progress", TeacherID: "T001"},
			{StudentID: "JD001", CourseID: "C002", Score: 90, Note: "Excellent work", TeacherID: "T002"},
			{StudentID: "JD001", CourseID: "C005", Score: 95, Note: "Outstanding!", TeacherID: "T001"},
			{StudentID: "JS001", CourseID: "C001", Score: 78, Note: "Needs improvement", TeacherID: "T001"},
			{StudentID: "JS001", CourseID: "C002", Score: 88, Note: "Very good", TeacherID: "T002"},
			{StudentID: "JS001", CourseID: "C003", Score: 82, Note: "Good effort", TeacherID: "T003"},
			{StudentID: "BJ001", CourseID: "C001", Score: 92, Note: "Outstanding", TeacherID: "T001"},
			{StudentID: "BJ001", CourseID: "C004", Score: 85, Note: "Solid work", TeacherID: "T004"},
		},
	}
}
