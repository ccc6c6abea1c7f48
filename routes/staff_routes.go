package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/controller"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/middleware"
)

func RegisterStaffRoutes(app *fiber.App, sc *controller.StaffController, authMiddleware fiber.Handler) {
	app.Get("/staffs", sc.List)
	app.Post("/staffs", sc.Create)
	app.Patch("/staffs/:id", authMiddleware, middleware.RoleRequired("admin"), sc.UpdateStatus)
}
