package models

type Role = string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

type User struct {
	ID          string `json:"id"          bson:"id"`
	Username    string `json:"username"    bson:"username"`
	Password    string `json:"password"    bson:"password"`
	Role        Role   `json:"role"        bson:"role"`
	Name        string `json:"name"        bson:"name"`
	FirstName   string `json:"firstName"   bson:"firstName"`
	LastName    string `json:"lastName"    bson:"lastName"`
	DateOfBirth string `json:"dateOfBirth" bson:"dateOfBirth"`
	Email       string `json:"email"       bson:"email"`
}

type Course struct {
	ID          string `json:"id"          bson:"id"`
	Name        string `json:"name"        bson:"name"`
	TeacherID   string `json:"teacherId"   bson:"teacherId"`
	Description string `json:"description" bson:"description"`
}

// Enrollment links one student to one course, the pair is unique.
type Enrollment struct {
	StudentID string `json:"studentId" bson:"studentId"`
	CourseID  string `json:"courseId"  bson:"courseId"`
}

// Grade is keyed by (StudentID, CourseID).
type Grade struct {
	StudentID string `json:"studentId" bson:"studentId"`
	CourseID  string `json:"courseId"  bson:"courseId"`
	Score     int    `json:"score"     bson:"score"`
	Note      string `json:"note"      bson:"note"`
	TeacherID string `json:"teacherId" bson:"teacherId"`
}

// Snapshot is the persisted layout of the whole store.
type Snapshot struct {
	Users       []User       `json:"users"       bson:"users"`
	Courses     []Course     `json:"courses"     bson:"courses"`
	Enrollments []Enrollment `json:"enrollments" bson:"enrollments"`
	Grades      []Grade      `json:"grades"      bson:"grades"`
}

// Clone returns a deep copy with non-nil slices, so an empty collection
// is written as [] rather than null.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Users:       append(make([]User, 0, len(s.Users)), s.Users...),
		Courses:     append(make([]Course, 0, len(s.Courses)), s.Courses...),
		Enrollments: append(make([]Enrollment, 0, len(s.Enrollments)), s.Enrollments...),
		Grades:      append(make([]Grade, 0, len(s.Grades)), s.Grades...),
	}
}
