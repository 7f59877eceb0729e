package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	subjectController "learnify_backend/internals/features/courses/subjects/controller"
	authMiddleware "learnify_backend/internals/middlewares/auth"
)

// SubjectRoutes mounts subjects under /api/subjects.
func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	subjects := api.Group("/subjects")
	subjects.Get("/", authMiddleware.AuthRequired(constants.AllRoles...), ctrl.GetAllSubjects)
	subjects.Get("/:courseId", authMiddleware.AuthRequired(constants.AllRoles...), ctrl.GetSubjectsByCourse)
	subjects.Post("/", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.CreateSubject)
	subjects.Put("/:id", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.UpdateSubject)
	subjects.Delete("/:id", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.DeleteSubject)
}
