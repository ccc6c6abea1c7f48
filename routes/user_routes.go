package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/controller"
)

func RegisterUserRoutes(app *fiber.App, uc *controller.UserController) {
	app.Post("/users", uc.Create)
}
