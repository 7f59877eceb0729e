package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "learnify_backend/internals/features/courses/courses/model"
	"learnify_backend/internals/features/courses/subjects/dto"
	"learnify_backend/internals/features/courses/subjects/model"
	helpers "learnify_backend/internals/helpers"
)

var validateSubject = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// =============================
// ➕ Create Subject
// =============================
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var body dto.CreateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubject.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	courseID, err := uuid.Parse(body.SubjectCourseID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	subject := model.SubjectModel{
		SubjectTitle:    body.SubjectTitle,
		SubjectCourseID: courseID,
	}
	// created_by comes from the admin token
	if raw, ok := c.Locals("user_id").(string); ok {
		if adminID, err := uuid.Parse(raw); err == nil {
			subject.SubjectCreatedBy = &adminID
		}
	}

	if err := ctrl.DB.Create(&subject).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helpers.JsonCreated(c, "Subject created", dto.ToSubjectDTO(subject))
}

// =============================
// 📄 Get All Subjects
// =============================
func (ctrl *SubjectController) GetAllSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := ctrl.DB.Find(&subjects).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}
	return helpers.JsonOK(c, "ok", dto.ToSubjectDTOs(subjects))
}

// =============================
// 🔍 Get Subjects By Course
// =============================
func (ctrl *SubjectController) GetSubjectsByCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var subjects []model.SubjectModel
	if err := ctrl.DB.Find(&subjects, "subject_course_id = ?", courseID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}
	return helpers.JsonOK(c, "ok", dto.ToSubjectDTOs(subjects))
}

// =============================
// 🔄 Update Subject
// =============================
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubject.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var subject model.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	subject.SubjectTitle = body.SubjectTitle
	if body.SubjectCourseID != "" {
		courseID, err := uuid.Parse(body.SubjectCourseID)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
		}
		subject.SubjectCourseID = courseID
	}

	if err := ctrl.DB.Save(&subject).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}

	return helpers.JsonUpdated(c, "Subject updated", dto.ToSubjectDTO(subject))
}

// =============================
// 🗑️ Delete Subject
// =============================
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	return helpers.JsonDeleted(c, "Subject deleted", nil)
}
