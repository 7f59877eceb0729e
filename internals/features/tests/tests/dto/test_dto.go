package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	subjectDTO "learnify_backend/internals/features/courses/subjects/dto"
	"learnify_backend/internals/features/tests/tests/model"
)

// ============================
// Request DTO
// ============================

type GenerateTestRequest struct {
	SubjectID string `json:"subject_id" validate:"required,uuid"`
}

// SubmittedQuestion mirrors the shape the generator returned to the client,
// plus the student's pick. An empty selected_answer simply scores as wrong.
type SubmittedQuestion struct {
	Question       string   `json:"question" validate:"required"`
	Options        []string `json:"options" validate:"required,min=2"`
	CorrectAnswer  string   `json:"correct_answer" validate:"required"`
	SelectedAnswer string   `json:"selected_answer"`
}

type SubmitTestRequest struct {
	SubjectID string              `json:"subject_id" validate:"required,uuid"`
	Questions []SubmittedQuestion `json:"questions" validate:"required,min=1,dive"`
}

// ============================
// Response DTO
// ============================

type TestQuestionDTO struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
	SelectedAnswer string   `json:"selected_answer"`
}

type TestDTO struct {
	TestID              string                  `json:"test_id"`
	TestStudentID       string                  `json:"test_student_id"`
	TestSubjectID       string                  `json:"test_subject_id"`
	TestScore           int                     `json:"test_score"`
	TestTotalQuestions  int                     `json:"test_total_questions"`
	TestPercentageScore int                     `json:"test_percentage_score"`
	TestCreatedAt       time.Time               `json:"test_created_at"`
	Subject             *subjectDTO.SubjectDTO `json:"subject,omitempty"`
	Questions           []TestQuestionDTO      `json:"questions"`
}

// ============================
// Converter
// ============================

// OptionsToJSON packs answer options into the JSON column shape.
func OptionsToJSON(opts []string) (datatypes.JSON, error) {
	b, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func toQuestionDTO(q model.TestQuestionModel) TestQuestionDTO {
	opts := []string{}
	if len(q.TestQuestionOptions) > 0 {
		_ = json.Unmarshal(q.TestQuestionOptions, &opts)
	}
	return TestQuestionDTO{
		Question:       q.TestQuestionText,
		Options:        opts,
		CorrectAnswer:  q.TestQuestionCorrectAnswer,
		SelectedAnswer: q.TestQuestionSelectedAnswer,
	}
}

func ToTestDTO(m model.TestModel) TestDTO {
	dto := TestDTO{
		TestID:              m.TestID.String(),
		TestStudentID:       m.TestStudentID.String(),
		TestSubjectID:       m.TestSubjectID.String(),
		TestScore:           m.TestScore,
		TestTotalQuestions:  m.TestTotalQuestions,
		TestPercentageScore: m.TestPercentageScore,
		TestCreatedAt:       m.TestCreatedAt,
		Questions:           []TestQuestionDTO{},
	}
	if m.Subject != nil {
		s := subjectDTO.ToSubjectDTO(*m.Subject)
		dto.Subject = &s
	}
	for _, q := range m.Questions {
		dto.Questions = append(dto.Questions, toQuestionDTO(q))
	}
	return dto
}

func ToTestDTOs(models []model.TestModel) []TestDTO {
	out := make([]TestDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToTestDTO(m))
	}
	return out
}
