package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/controller"
)

func RegisterPaymentRoutes(app *fiber.App, pc *controller.PaymentController, authMiddleware fiber.Handler) {
	app.Post("/payment-checkout-session", pc.CreateCheckoutSession)
	app.Patch("/payment-success", pc.PaymentSuccess)
	app.Get("/payments", authMiddleware, pc.List)
}
