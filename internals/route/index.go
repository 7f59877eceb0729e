// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/configs"
	testService "learnify_backend/internals/features/tests/tests/service"
	routeDetails "learnify_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every feature route group under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Mounting Admin auth routes...")
	routeDetails.AdminAuthRoutes(api, db)

	log.Println("[INFO] Mounting Student routes...")
	routeDetails.StudentRoutes(api, db)

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthRoutes(api, db)

	log.Println("[INFO] Mounting Course routes...")
	routeDetails.CourseRoutes(api, db)

	log.Println("[INFO] Mounting Subject routes...")
	routeDetails.SubjectRoutes(api, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	routeDetails.EnrollmentRoutes(api, db)

	log.Println("[INFO] Mounting Test routes...")
	routeDetails.TestRoutes(api, db, testService.NewGeminiGenerator(configs.GeminiAPIKey))
}
