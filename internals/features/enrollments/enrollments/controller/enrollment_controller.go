package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "learnify_backend/internals/features/courses/courses/model"
	"learnify_backend/internals/features/enrollments/enrollments/dto"
	"learnify_backend/internals/features/enrollments/enrollments/model"
	studentModel "learnify_backend/internals/features/users/students/model"
	helpers "learnify_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// =============================
// ➕ Enroll in a Course
// =============================
// Double enrollment is rejected by the compound unique index, not by a
// pre-query: the insert is the only check that holds under concurrency.
func (ctrl *EnrollmentController) EnrollStudent(c *fiber.Ctx) error {
	studentID, _ := c.Locals("user_id").(string)

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", c.Params("courseId")).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	enrollment := model.EnrolledStudentModel{
		EnrolledStudentName:           student.StudentName,
		EnrolledStudentEmail:          student.StudentEmail,
		EnrolledStudentStudentID:      student.StudentID,
		EnrolledStudentCourseID:       course.CourseID,
		EnrolledStudentCourseTitle:    course.CourseTitle,
		EnrolledStudentCourseCategory: course.CourseCategory,
	}

	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		if helpers.IsDuplicateKeyError(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Already enrolled in this course")
		}
		log.Printf("[ERROR] enrollment: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error during enrollment")
	}

	return helpers.JsonCreated(c, "Enrolled successfully", dto.ToEnrollmentDTO(enrollment))
}

// =============================
// 🔍 Enrollment Status
// =============================
func (ctrl *EnrollmentController) GetEnrollmentStatus(c *fiber.Ctx) error {
	studentID, _ := c.Locals("user_id").(string)

	var count int64
	if err := ctrl.DB.Model(&model.EnrolledStudentModel{}).
		Where("enrolled_student_student_id = ? AND enrolled_student_course_id = ?", studentID, c.Params("courseId")).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{"enrolled": count > 0})
}

// =============================
// 📄 Get All Enrollments (admin)
// =============================
// Paginated and searchable over student name/email and course title.
func (ctrl *EnrollmentController) GetAllEnrollments(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.EnrolledStudentModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"enrolled_student_name LIKE ? OR enrolled_student_email LIKE ? OR enrolled_student_course_title LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var enrollments []model.EnrolledStudentModel
	if err := q.Order("enrolled_student_enrolled_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&enrollments).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}

	return helpers.JsonList(c, "ok",
		dto.ToEnrollmentDTOs(enrollments),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	)
}

// =============================
// 📊 Enrollment Stats (admin)
// =============================
func (ctrl *EnrollmentController) GetStats(c *fiber.Ctx) error {
	var stats dto.EnrollmentStatsDTO

	if err := ctrl.DB.Model(&model.EnrolledStudentModel{}).
		Count(&stats.TotalEnrollments).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := ctrl.DB.Model(&model.EnrolledStudentModel{}).
		Distinct("enrolled_student_student_id").
		Count(&stats.DistinctStudents).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := ctrl.DB.Model(&model.EnrolledStudentModel{}).
		Select("enrolled_student_course_id, enrolled_student_course_title, COUNT(*) AS enrolled").
		Group("enrolled_student_course_id, enrolled_student_course_title").
		Order("enrolled DESC").
		Scan(&stats.PerCourse).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if stats.PerCourse == nil {
		stats.PerCourse = []dto.CourseEnrollStat{}
	}

	return helpers.JsonOK(c, "ok", stats)
}

// =============================
// 🗑️ Delete Enrollment (admin)
// =============================
func (ctrl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.EnrolledStudentModel{}, "enrolled_student_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}

	return helpers.JsonDeleted(c, "Enrollment deleted", nil)
}
