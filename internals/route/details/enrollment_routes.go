package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	enrollmentController "learnify_backend/internals/features/enrollments/enrollments/controller"
	authMiddleware "learnify_backend/internals/middlewares/auth"
)

// EnrollmentRoutes mounts enrollment endpoints directly under /api, matching
// the paths the frontend calls (enroll/status/get-all/stats/delete).
func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	api.Post("/enroll/:courseId", authMiddleware.AuthRequired(constants.StudentOnly...), ctrl.EnrollStudent)
	api.Get("/status/:courseId", authMiddleware.AuthRequired(constants.StudentOnly...), ctrl.GetEnrollmentStatus)
	api.Get("/get-all", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.GetAllEnrollments)
	api.Get("/stats", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.GetStats)
	api.Delete("/delete/:id", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.DeleteEnrollment)
}
