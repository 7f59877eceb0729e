package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "learnify_backend/internals/features/courses/subjects/model"
	"learnify_backend/internals/features/tests/tests/dto"
	"learnify_backend/internals/features/tests/tests/model"
	"learnify_backend/internals/features/tests/tests/service"
	helpers "learnify_backend/internals/helpers"
)

var validateTest = validator.New()

type TestController struct {
	DB        *gorm.DB
	Generator service.QuestionGenerator
}

func NewTestController(db *gorm.DB, gen service.QuestionGenerator) *TestController {
	return &TestController{DB: db, Generator: gen}
}

// =============================
// 🤖 Generate Questions
// =============================
// Ephemeral: the generated batch is returned to the client and never stored.
// Nothing persists until the student submits answers.
func (ctrl *TestController) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTest.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", req.SubjectID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	questions, err := ctrl.Generator.GenerateQuestions(c.Context(), subject.SubjectTitle)
	if err != nil {
		log.Printf("[ERROR] question generation: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "AI generation failed")
	}

	return helpers.JsonOK(c, "Questions generated", fiber.Map{
		"subject_id": subject.SubjectID,
		"questions":  questions,
	})
}

// =============================
// 📝 Submit Test
// =============================
// Scores server-side from the submitted correct/selected pairs, then saves
// the test and its questions atomically.
func (ctrl *TestController) SubmitTest(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var req dto.SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTest.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", req.SubjectID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	score := service.ScoreTest(req.Questions)
	total := len(req.Questions)

	test := model.TestModel{
		TestStudentID:       studentID,
		TestSubjectID:       subject.SubjectID,
		TestScore:           score,
		TestTotalQuestions:  total,
		TestPercentageScore: service.PercentageScore(score, total),
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&test).Error; err != nil {
			return err
		}
		for i, q := range req.Questions {
			opts, err := dto.OptionsToJSON(q.Options)
			if err != nil {
				return err
			}
			row := model.TestQuestionModel{
				TestQuestionTestID:         test.TestID,
				TestQuestionPosition:       i,
				TestQuestionText:           q.Question,
				TestQuestionOptions:        opts,
				TestQuestionCorrectAnswer:  q.CorrectAnswer,
				TestQuestionSelectedAnswer: q.SelectedAnswer,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		log.Printf("[ERROR] test submission: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to save test")
	}

	if err := ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_question_position ASC")
		}).
		First(&test, "test_id = ?", test.TestID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load saved test")
	}

	return helpers.JsonCreated(c, "Test submitted", dto.ToTestDTO(test))
}

// =============================
// 📜 Test History (student)
// =============================
func (ctrl *TestController) GetTestHistory(c *fiber.Ctx) error {
	studentID, _ := c.Locals("user_id").(string)

	var tests []model.TestModel
	if err := ctrl.DB.
		Preload("Subject").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_question_position ASC")
		}).
		Where("test_student_id = ?", studentID).
		Order("test_created_at DESC").
		Find(&tests).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve test history")
	}

	return helpers.JsonOK(c, "ok", dto.ToTestDTOs(tests))
}

// =============================
// 📄 Get All Tests (admin)
// =============================
func (ctrl *TestController) GetAllTests(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 200)

	var total int64
	if err := ctrl.DB.Model(&model.TestModel{}).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to count tests")
	}

	var tests []model.TestModel
	if err := ctrl.DB.
		Preload("Subject").
		Order("test_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&tests).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tests")
	}

	return helpers.JsonList(c, "ok",
		dto.ToTestDTOs(tests),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	)
}

// =============================
// 🔍 Tests by Subject (admin)
// =============================
func (ctrl *TestController) GetTestsBySubject(c *fiber.Ctx) error {
	var tests []model.TestModel
	if err := ctrl.DB.
		Preload("Subject").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_question_position ASC")
		}).
		Where("test_subject_id = ?", c.Params("subjectId")).
		Order("test_created_at DESC").
		Find(&tests).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tests")
	}

	if len(tests) == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "No tests found for this subject")
	}

	return helpers.JsonOK(c, "ok", dto.ToTestDTOs(tests))
}
