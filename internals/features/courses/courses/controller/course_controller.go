package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/features/courses/courses/dto"
	"learnify_backend/internals/features/courses/courses/model"
	helpers "learnify_backend/internals/helpers"
)

var validateCourse = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// =============================
// ➕ Create Course
// =============================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	unit := body.CourseDurationUnit
	if unit == "" {
		unit = model.DurationWeeks
	}

	course := model.CourseModel{
		CourseTitle:         body.CourseTitle,
		CourseInstructor:    body.CourseInstructor,
		CourseCategory:      body.CourseCategory,
		CourseLevel:         body.CourseLevel,
		CourseDurationValue: body.CourseDurationValue,
		CourseDurationUnit:  unit,
		CourseDescription:   body.CourseDescription,
		CourseThumbnail:     body.CourseThumbnail,
		CourseRating:        body.CourseRating,
		CourseStudents:      body.CourseStudents,
		CoursePrice:         body.CoursePrice,
		CourseModules:       dto.ModulesToJSON(body.CourseModules),
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helpers.JsonCreated(c, "Course created", dto.ToCourseDTO(course))
}

// =============================
// 📄 Get All Courses
// =============================
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctrl.DB.Order("course_created_at DESC").Find(&courses).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	return helpers.JsonOK(c, "ok", dto.ToCourseDTOs(courses))
}

// =============================
// 🔍 Get Course By ID
// =============================
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helpers.JsonOK(c, "ok", dto.ToCourseDTO(course))
}

// =============================
// 🔄 Update Course
// =============================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if body.CourseTitle != nil {
		course.CourseTitle = *body.CourseTitle
	}
	if body.CourseInstructor != nil {
		course.CourseInstructor = *body.CourseInstructor
	}
	if body.CourseCategory != nil {
		course.CourseCategory = *body.CourseCategory
	}
	if body.CourseLevel != nil {
		course.CourseLevel = *body.CourseLevel
	}
	if body.CourseDurationValue != nil {
		course.CourseDurationValue = *body.CourseDurationValue
	}
	if body.CourseDurationUnit != nil {
		course.CourseDurationUnit = *body.CourseDurationUnit
	}
	if body.CourseDescription != nil {
		course.CourseDescription = *body.CourseDescription
	}
	if body.CourseThumbnail != nil {
		course.CourseThumbnail = *body.CourseThumbnail
	}
	if body.CourseRating != nil {
		course.CourseRating = *body.CourseRating
	}
	if body.CourseStudents != nil {
		course.CourseStudents = *body.CourseStudents
	}
	if body.CoursePrice != nil {
		course.CoursePrice = *body.CoursePrice
	}
	if body.CourseModules != nil {
		course.CourseModules = dto.ModulesToJSON(*body.CourseModules)
	}

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	return helpers.JsonUpdated(c, "Course updated", dto.ToCourseDTO(course))
}

// =============================
// 🗑️ Delete Course
// =============================
// Hard delete, no cascade: subjects and enrollments that reference the
// course stay behind.
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	return helpers.JsonDeleted(c, "Course deleted", nil)
}
