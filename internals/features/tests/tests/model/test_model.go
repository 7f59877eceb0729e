package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	subjectModel "learnify_backend/internals/features/courses/subjects/model"
)

type TestModel struct {
	TestID              uuid.UUID `gorm:"column:test_id;type:uuid;primaryKey" json:"test_id"`
	TestStudentID       uuid.UUID `gorm:"column:test_student_id;type:uuid;not null;index" json:"test_student_id"`
	TestSubjectID       uuid.UUID `gorm:"column:test_subject_id;type:uuid;not null;index" json:"test_subject_id"`
	TestScore           int       `gorm:"column:test_score;not null" json:"test_score"`
	TestTotalQuestions  int       `gorm:"column:test_total_questions;not null" json:"test_total_questions"`
	TestPercentageScore int       `gorm:"column:test_percentage_score;not null" json:"test_percentage_score"`
	TestCreatedAt       time.Time `gorm:"column:test_created_at;autoCreateTime" json:"test_created_at"`

	Subject   *subjectModel.SubjectModel `gorm:"foreignKey:TestSubjectID;references:SubjectID" json:"subject,omitempty"`
	Questions []TestQuestionModel        `gorm:"foreignKey:TestQuestionTestID;references:TestID" json:"questions,omitempty"`
}

// TableName sets the table name for TestModel
func (TestModel) TableName() string {
	return "tests"
}

func (m *TestModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestID == uuid.Nil {
		m.TestID = uuid.New()
	}
	return nil
}

// TestQuestionModel is one graded question of a submitted test, kept in
// submission order via the position column.
type TestQuestionModel struct {
	TestQuestionID             uuid.UUID      `gorm:"column:test_question_id;type:uuid;primaryKey" json:"test_question_id"`
	TestQuestionTestID         uuid.UUID      `gorm:"column:test_question_test_id;type:uuid;not null;index" json:"test_question_test_id"`
	TestQuestionPosition       int            `gorm:"column:test_question_position;not null" json:"test_question_position"`
	TestQuestionText           string         `gorm:"column:test_question_text;type:text;not null" json:"test_question_text"`
	TestQuestionOptions        datatypes.JSON `gorm:"column:test_question_options" json:"test_question_options"`
	TestQuestionCorrectAnswer  string         `gorm:"column:test_question_correct_answer;type:text;not null" json:"test_question_correct_answer"`
	TestQuestionSelectedAnswer string         `gorm:"column:test_question_selected_answer;type:text" json:"test_question_selected_answer"`
}

// TableName sets the table name for TestQuestionModel
func (TestQuestionModel) TableName() string {
	return "test_questions"
}

func (m *TestQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestQuestionID == uuid.Nil {
		m.TestQuestionID = uuid.New()
	}
	return nil
}
