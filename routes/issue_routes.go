package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/controller"
)

func RegisterIssueRoutes(app *fiber.App, ic *controller.IssueController) {
	app.Get("/issues", ic.List)
	app.Get("/issues/:id", ic.Get)
	app.Post("/issues", ic.Create)
	app.Delete("/issues/:id", ic.Delete)
}
