package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	adminController "learnify_backend/internals/features/users/admins/controller"
	"learnify_backend/internals/middlewares"
	authMiddleware "learnify_backend/internals/middlewares/auth"
)

// AdminAuthRoutes mounts admin register/login/logout/me under /api/admin.
func AdminAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admin := api.Group("/admin")
	admin.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	admin.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	admin.Get("/logout", ctrl.Logout)
	admin.Get("/me", authMiddleware.AuthRequired(constants.AdminOnly...), ctrl.Me)
}
