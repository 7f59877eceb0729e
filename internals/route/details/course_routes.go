package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	courseController "learnify_backend/internals/features/courses/courses/controller"
	authMiddleware "learnify_backend/internals/middlewares/auth"
)

// CourseRoutes mounts the course catalog under /api/courses. Reads are open
// to both roles so students can browse before enrolling; writes are admin.
func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", authMiddleware.AuthRequired(constants.AllRoles...), ctrl.GetCourses)
	courses.Get("/:id", authMiddleware.AuthRequired(constants.AllRoles...), ctrl.GetCourseByID)
	courses.Post("/", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.CreateCourse)
	courses.Put("/:id", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.UpdateCourse)
	courses.Delete("/:id", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.DeleteCourse)
}
