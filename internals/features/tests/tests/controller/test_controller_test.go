package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "learnify_backend/internals/features/courses/courses/model"
	subjectModel "learnify_backend/internals/features/courses/subjects/model"
	"learnify_backend/internals/features/tests/tests/model"
	"learnify_backend/internals/features/tests/tests/service"
	studentModel "learnify_backend/internals/features/users/students/model"
)

type stubGenerator struct {
	questions []service.GeneratedQuestion
	err       error
}

func (s *stubGenerator) GenerateQuestions(_ context.Context, _ string) ([]service.GeneratedQuestion, error) {
	return s.questions, s.err
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&subjectModel.SubjectModel{},
		&model.TestModel{},
		&model.TestQuestionModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupApp(db *gorm.DB, gen service.QuestionGenerator, studentID string) *fiber.App {
	ctrl := NewTestController(db, gen)

	app := fiber.New()
	asStudent := func(c *fiber.Ctx) error {
		c.Locals("user_id", studentID)
		return c.Next()
	}
	app.Post("/api/tests/generate", asStudent, ctrl.GenerateQuestions)
	app.Post("/api/tests/submit", asStudent, ctrl.SubmitTest)
	app.Get("/api/tests/history", asStudent, ctrl.GetTestHistory)
	app.Get("/api/tests/", ctrl.GetAllTests)
	app.Get("/api/tests/subject/:subjectId", ctrl.GetTestsBySubject)
	return app
}

func seedSubject(t *testing.T, db *gorm.DB) (studentModel.StudentModel, subjectModel.SubjectModel) {
	t.Helper()
	student := studentModel.StudentModel{
		StudentName:     "Asha",
		StudentEmail:    "asha@example.com",
		StudentPassword: "hashed",
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	course := courseModel.CourseModel{
		CourseTitle:         "Go Fundamentals",
		CourseInstructor:    "R. Pike",
		CourseCategory:      "Programming",
		CourseLevel:         courseModel.LevelBeginner,
		CourseDurationValue: 6,
		CourseDurationUnit:  courseModel.DurationWeeks,
		CourseDescription:   "Intro course",
		CourseThumbnail:     "https://example.com/t.png",
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	subject := subjectModel.SubjectModel{
		SubjectTitle:    "Concurrency",
		SubjectCourseID: course.CourseID,
	}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	return student, subject
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return body
}

func fiveQuestions() []service.GeneratedQuestion {
	qs := make([]service.GeneratedQuestion, 0, 5)
	for _, q := range []string{"q1", "q2", "q3", "q4", "q5"} {
		qs = append(qs, service.GeneratedQuestion{
			Question:      q,
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
		})
	}
	return qs
}

func TestGenerateQuestions(t *testing.T) {
	db := setupDB(t)
	student, subject := seedSubject(t, db)

	t.Run("unknown subject", func(t *testing.T) {
		app := setupApp(db, &stubGenerator{questions: fiveQuestions()}, student.StudentID.String())
		resp := postJSON(t, app, "/api/tests/generate", fiber.Map{
			"subject_id": "1f2e3d4c-0000-0000-0000-000000000000",
		})
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "Subject not found" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		app := setupApp(db, &stubGenerator{err: errors.New("quota exceeded")}, student.StudentID.String())
		resp := postJSON(t, app, "/api/tests/generate", fiber.Map{
			"subject_id": subject.SubjectID.String(),
		})
		if resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", resp.StatusCode)
		}
	})

	t.Run("success", func(t *testing.T) {
		app := setupApp(db, &stubGenerator{questions: fiveQuestions()}, student.StudentID.String())
		resp := postJSON(t, app, "/api/tests/generate", fiber.Map{
			"subject_id": subject.SubjectID.String(),
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		data := decodeBody(t, resp)["data"].(map[string]any)
		if got := len(data["questions"].([]any)); got != 5 {
			t.Errorf("questions = %d, want 5", got)
		}

		// Generation is ephemeral: nothing lands in the tests table.
		var count int64
		db.Model(&model.TestModel{}).Count(&count)
		if count != 0 {
			t.Errorf("tests persisted during generation: %d", count)
		}
	})
}

func TestSubmitTest_ScoresAndPersists(t *testing.T) {
	db := setupDB(t)
	student, subject := seedSubject(t, db)
	app := setupApp(db, &stubGenerator{}, student.StudentID.String())

	// 404 before any submission
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tests/subject/"+subject.SubjectID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("pre-submit subject lookup = %d, want 404", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["message"] != "No tests found for this subject" {
		t.Errorf("message = %v", body["message"])
	}

	submitted := []fiber.Map{
		{"question": "q1", "options": []string{"A", "B"}, "correct_answer": "A", "selected_answer": "A"},
		{"question": "q2", "options": []string{"A", "B"}, "correct_answer": "B", "selected_answer": "B"},
		{"question": "q3", "options": []string{"A", "B"}, "correct_answer": "A", "selected_answer": "A"},
		{"question": "q4", "options": []string{"A", "B"}, "correct_answer": "A", "selected_answer": "B"},
		{"question": "q5", "options": []string{"A", "B"}, "correct_answer": "B", "selected_answer": ""},
	}
	resp = postJSON(t, app, "/api/tests/submit", fiber.Map{
		"subject_id": subject.SubjectID.String(),
		"questions":  submitted,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit status = %d, want 201", resp.StatusCode)
	}

	data := decodeBody(t, resp)["data"].(map[string]any)
	if data["test_score"].(float64) != 3 {
		t.Errorf("test_score = %v, want 3", data["test_score"])
	}
	if data["test_total_questions"].(float64) != 5 {
		t.Errorf("test_total_questions = %v, want 5", data["test_total_questions"])
	}
	if data["test_percentage_score"].(float64) != 60 {
		t.Errorf("test_percentage_score = %v, want 60", data["test_percentage_score"])
	}
	questions := data["questions"].([]any)
	if len(questions) != 5 {
		t.Fatalf("returned questions = %d, want 5", len(questions))
	}
	// submission order survives the round trip
	first := questions[0].(map[string]any)
	if first["question"] != "q1" {
		t.Errorf("first question = %v, want q1", first["question"])
	}

	// subject endpoint now finds it
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/tests/subject/"+subject.SubjectID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("post-submit subject lookup = %d, want 200", resp.StatusCode)
	}
}

func TestGetTestHistory_NewestFirst(t *testing.T) {
	db := setupDB(t)
	student, subject := seedSubject(t, db)
	app := setupApp(db, &stubGenerator{}, student.StudentID.String())

	submit := func(selected string) {
		resp := postJSON(t, app, "/api/tests/submit", fiber.Map{
			"subject_id": subject.SubjectID.String(),
			"questions": []fiber.Map{
				{"question": "q1", "options": []string{"A", "B"}, "correct_answer": "A", "selected_answer": selected},
			},
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("submit status = %d", resp.StatusCode)
		}
	}
	submit("B") // 0/1
	submit("A") // 1/1

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tests/history", nil))
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history status = %d, want 200", resp.StatusCode)
	}
	tests := decodeBody(t, resp)["data"].([]any)
	if len(tests) != 2 {
		t.Fatalf("history entries = %d, want 2", len(tests))
	}
}
