package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	subjectDTO "learnify_backend/internals/features/courses/subjects/dto"
	subjectModel "learnify_backend/internals/features/courses/subjects/model"
	authService "learnify_backend/internals/features/users/auth/service"
	"learnify_backend/internals/features/users/students/dto"
	"learnify_backend/internals/features/users/students/model"
	helpers "learnify_backend/internals/helpers"
)

var validateStudent = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// =============================
// ➕ Register Student
// =============================
func (ctrl *StudentController) Register(c *fiber.Ctx) error {
	var body dto.RegisterStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var existing model.StudentModel
	if err := ctrl.DB.First(&existing, "student_email = ?", body.StudentEmail).Error; err == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	hash, err := authService.HashPassword(body.StudentPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	student := model.StudentModel{
		StudentName:     body.StudentName,
		StudentEmail:    body.StudentEmail,
		StudentPassword: hash,
	}
	if body.StudentCourseID != "" {
		courseID, err := uuid.Parse(body.StudentCourseID)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
		}
		student.StudentCourseID = &courseID
	}

	if err := ctrl.DB.Create(&student).Error; err != nil {
		if helpers.IsDuplicateKeyError(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email already exists")
		}
		log.Printf("[ERROR] create student: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	token, err := authService.GenerateToken(student.StudentID, constants.RoleStudent, student.StudentEmail)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	authService.SetAuthCookie(c, helpers.StudentTokenCookie, token)

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"token": token,
	})
}

// =============================
// 🔑 Login Student
// =============================
func (ctrl *StudentController) Login(c *fiber.Ctx) error {
	var body dto.LoginStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_email = ?", body.StudentEmail).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if !authService.CheckPassword(student.StudentPassword, body.StudentPassword) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := authService.GenerateToken(student.StudentID, constants.RoleStudent, student.StudentEmail)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	authService.SetAuthCookie(c, helpers.StudentTokenCookie, token)

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
	})
}

// =============================
// 🚪 Logout Student
// =============================
func (ctrl *StudentController) Logout(c *fiber.Ctx) error {
	authService.ClearAuthCookie(c, helpers.StudentTokenCookie)
	return helpers.JsonOK(c, "Logged out", nil)
}

// =============================
// 👤 Current Student
// =============================
func (ctrl *StudentController) Me(c *fiber.Ctx) error {
	return helpers.JsonOK(c, "ok", fiber.Map{
		"role":  c.Locals("userRole"),
		"email": c.Locals("user_email"),
	})
}

// =============================
// 📚 Subjects of My Course
// =============================
func (ctrl *StudentController) GetMySubjects(c *fiber.Ctx) error {
	studentID, _ := c.Locals("user_id").(string)

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	if student.StudentCourseID == nil {
		return helpers.JsonOK(c, "ok", []subjectDTO.SubjectDTO{})
	}

	var subjects []subjectModel.SubjectModel
	if err := ctrl.DB.Find(&subjects, "subject_course_id = ?", *student.StudentCourseID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}

	return helpers.JsonOK(c, "ok", subjectDTO.ToSubjectDTOs(subjects))
}

// =============================
// 📄 Get All Students (admin)
// =============================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := ctrl.DB.Preload("Course").Find(&students).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}
	return helpers.JsonOK(c, "ok", dto.ToStudentDTOs(students))
}

// =============================
// 🗑️ Delete Student (admin)
// =============================
func (ctrl *StudentController) DeleteStudentByID(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helpers.JsonDeleted(c, "Student deleted successfully", nil)
}
