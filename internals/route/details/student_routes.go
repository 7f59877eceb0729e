package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	studentController "learnify_backend/internals/features/users/students/controller"
	"learnify_backend/internals/middlewares"
	authMiddleware "learnify_backend/internals/middlewares/auth"
)

// StudentRoutes mounts student auth plus the admin-only student management
// endpoints under /api/students.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students")
	students.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	students.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	students.Get("/logout", ctrl.Logout)
	students.Get("/me", authMiddleware.AuthRequired(constants.StudentOnly...), ctrl.Me)
	students.Get("/subjects", authMiddleware.AuthRequired(constants.StudentOnly...), ctrl.GetMySubjects)

	students.Get("/", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.GetAllStudents)
	students.Delete("/:id", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.DeleteStudentByID)
}
