package api

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/internal/records"
	"github.com/nikmy/classbook/internal/router"
	"github.com/nikmy/classbook/internal/storage"
	"github.com/nikmy/classbook/internal/wire"
	"github.com/nikmy/classbook/pkg/logger"
)

func newTestRouter(t *testing.T) (*router.Router, *records.Store) {
	t.Helper()

	log := logger.NewStub()
	backend := storage.NewFile(filepath.Join(t.TempDir(), "data.json"), log)

	store, err := records.Open(context.Background(), backend, time.Second, log)
	require.NoError(t, err)

	r, err := NewRouter(store, log)
	require.NoError(t, err)
	return r, store
}

func TestRouter_ReadEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	type testcase struct {
		name string
		path string
		want string
	}

	tests := [...]testcase{
		{
			name: "students",
			path: "/api/students",
			want: `[{"id":"JD001","username":"john"},{"id":"JS001","username":"jane"},{"id":"BJ001","username":"bob"}]`,
		},
		{
			name: "student courses",
			path: "/api/students/BJ001/courses",
			want: `[
				{"id":"C001","name":"Mathematics","teacherId":"T001","teacherName":"mrsmith","description":"Algebra, Calculus, and Geometry"},
				{"id":"C004","name":"History","teacherId":"T004","teacherName":"msdavis","description":"World History and Civics"}
			]`,
		},
		{
			name: "unknown student has no courses",
			path: "/api/students/XX999/courses",
			want: `[]`,
		},
		{
			name: "course students",
			path: "/api/courses/C004/students",
			want: `[{"id":"BJ001","username":"bob","name":"Bob Johnson","role":"student"}]`,
		},
		{
			name: "student grades",
			path: "/api/grades/JS001",
			want: `[
				{"courseId":"C001","courseName":"Mathematics","score":78,"note":"Needs improvement","teacherId":"T001"},
				{"courseId":"C002","courseName":"English","score":88,"note":"Very good","teacherId":"T002"},
				{"courseId":"C003","courseName":"Science","score":82,"note":"Good effort","teacherId":"T003"}
			]`,
		},
		{
			name: "teacher grades",
			path: "/api/teacher/T004/grades",
			want: `[{"studentId":"BJ001","studentName":"Bob Johnson","courseId":"C004","courseName":"History","score":85,"note":"Solid work","teacherId":"T004"}]`,
		},
		{
			name: "teacher courses",
			path: "/api/teacher/T001/courses",
			want: `[
				{"id":"C001","name":"Mathematics","teacherId":"T001","teacherName":"mrsmith","description":"Algebra, Calculus, and Geometry"},
				{"id":"C005","name":"Computer Science","teacherId":"T001","teacherName":"mrsmith","description":"Programming and Web Development"}
			]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(&wire.Request{Method: http.MethodGet, Path: tt.path})
			require.Equal(t, http.StatusOK, resp.Status)
			require.JSONEq(t, tt.want, string(resp.Body))
		})
	}
}

func TestRouter_CoursesWithUnknownTeacher(t *testing.T) {
	r, store := newTestRouter(t)
	store.AssignTeacher("T404", "C003")

	resp := r.Dispatch(&wire.Request{Method: http.MethodGet, Path: "/api/courses"})
	require.Equal(t, http.StatusOK, resp.Status)
	require.Contains(t, string(resp.Body), `{"id":"C003","name":"Science","teacherId":"T404","teacherName":"Unknown","description":"Physics, Chemistry, and Biology"}`)
}

func TestRouter_GradeLifecycle(t *testing.T) {
	r, store := newTestRouter(t)

	do := func(method, path, body string) *wire.Response {
		return r.Dispatch(&wire.Request{Method: method, Path: path, Body: []byte(body)})
	}

	resp := do(http.MethodPost, "/api/grades", `{"studentId":"BJ001","courseId":"C002","score":70,"note":"n","teacherId":"T002"}`)
	require.Equal(t, http.StatusBadRequest, resp.Status)
	require.Len(t, store.GradesForStudent("BJ001"), 2)

	resp = do(http.MethodPost, "/api/enroll", `{"studentId":"BJ001","courseId":"C002"}`)
	require.Equal(t, http.StatusOK, resp.Status)

	resp = do(http.MethodPost, "/api/grades", `{"studentId":"BJ001","courseId":"C002","score":70,"note":"n","teacherId":"T002"}`)
	require.Equal(t, http.StatusOK, resp.Status)

	resp = do(http.MethodPost, "/api/grades", `{"studentId":"BJ001","courseId":"C002","score":75,"note":"better","teacherId":"T002"}`)
	require.Equal(t, http.StatusOK, resp.Status)

	grades := store.GradesForStudent("BJ001")
	require.Len(t, grades, 3)
	require.Equal(t, 75, grades[2].Score)
	require.Equal(t, "better", grades[2].Note)

	resp = do(http.MethodGet, "/api/grades", "")
	require.Equal(t, http.StatusOK, resp.Status)
	require.Contains(t, string(resp.Body), `"studentName":"Bob Johnson","courseId":"C002","courseName":"English","score":75`)

	resp = do(http.MethodDelete, "/api/grades", `{"studentId":"BJ001","courseId":"C002"}`)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Len(t, store.GradesForStudent("BJ001"), 2)

	resp = do(http.MethodPost, "/api/unenroll", `{"studentId":"BJ001","courseId":"C002"}`)
	require.Equal(t, http.StatusOK, resp.Status)
	require.False(t, store.IsEnrolled("BJ001", "C002"))
}

func TestRouter_SignupThenLogin(t *testing.T) {
	r, store := newTestRouter(t)

	resp := r.Dispatch(&wire.Request{
		Method: http.MethodPost,
		Path:   "/api/signup",
		Body:   []byte(`{"username":"ada","password":"engine","firstName":"Ada","lastName":"Lovelace","dateOfBirth":"1815-12-10","email":"ada@school.edu","role":"student","courseId":"C005"}`),
	})
	require.Equal(t, http.StatusCreated, resp.Status)
	require.JSONEq(t, `{"success":true,"user":{"id":"AL004","username":"ada","role":"student"}}`, string(resp.Body))
	require.True(t, store.IsEnrolled("AL004", "C005"))

	resp = r.Dispatch(&wire.Request{
		Method: http.MethodPost,
		Path:   "/api/login",
		Body:   []byte(`{"username":"ada","password":"engine"}`),
	})
	require.Equal(t, http.StatusOK, resp.Status)
	require.JSONEq(t, `{"success":true,"user":{"id":"AL004","username":"ada","role":"student"}}`, string(resp.Body))
}

func TestRouter_ConcurrentSignupsGetDistinctIDs(t *testing.T) {
	r, store := newTestRouter(t)

	const signups = 40
	body := []byte(`{"username":"sub","password":"p","firstName":"Sam","lastName":"Sub","dateOfBirth":"1990-01-01","email":"sub@school.edu","role":"teacher"}`)

	var wg sync.WaitGroup
	ids := make([]string, signups)
	for i := range signups {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp := r.Dispatch(&wire.Request{Method: http.MethodPost, Path: "/api/signup", Body: body})

			var got authResponse
			if resp.Status == http.StatusCreated && json.Unmarshal(resp.Body, &got) == nil && got.User != nil {
				ids[i] = got.User.ID
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, signups)
	for _, id := range ids {
		require.NotEmpty(t, id)
		require.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
	require.True(t, seen["T005"])
	require.True(t, seen["T044"])
	require.Equal(t, 4+signups, store.CountByRole(models.RoleTeacher))
}

func TestRouter_Fallbacks(t *testing.T) {
	r, _ := newTestRouter(t)

	resp := r.Dispatch(&wire.Request{Method: http.MethodPut, Path: "/api/grades"})
	require.Equal(t, http.StatusNotFound, resp.Status)
	require.JSONEq(t, `{"error":"Endpoint not found"}`, string(resp.Body))

	resp = r.Dispatch(&wire.Request{Method: http.MethodOptions, Path: "/api/anything"})
	require.Equal(t, http.StatusOK, resp.Status)
	require.Empty(t, resp.Body)
}
