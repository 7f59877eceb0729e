package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	testController "learnify_backend/internals/features/tests/tests/controller"
	testService "learnify_backend/internals/features/tests/tests/service"
	authMiddleware "learnify_backend/internals/middlewares/auth"
)

// TestRoutes mounts mock-test endpoints under /api/tests. The generator is
// passed in so main wires the real Gemini client and tests wire a stub.
func TestRoutes(api fiber.Router, db *gorm.DB, gen testService.QuestionGenerator) {
	ctrl := testController.NewTestController(db, gen)

	tests := api.Group("/tests")
	tests.Post("/generate", authMiddleware.AuthRequired(constants.StudentOnly...), ctrl.GenerateQuestions)
	tests.Post("/submit", authMiddleware.AuthRequired(constants.StudentOnly...), ctrl.SubmitTest)
	tests.Get("/history", authMiddleware.AuthRequired(constants.StudentOnly...), ctrl.GetTestHistory)
	tests.Get("/", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.GetAllTests)
	tests.Get("/subject/:subjectId", authMiddleware.AuthRequired(constants.AllRoles...), ctrl.GetTestsBySubject)
}
