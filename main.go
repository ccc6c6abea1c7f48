package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/cache"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/checkout"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/controller"
	kafkax "github.com/HasiburRahmanDev/issue-reporting-system-server/kafka"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/middleware"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/routes"
)

var DB *gorm.DB

// ======================
// INIT DATABASE
// ======================
func initDB() {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASS", "postgres")
	name := getEnv("DB_NAME", "issue_report_db")

	dsn := "host=" + host +
		" user=" + user +
		" password=" + pass +
		" dbname=" + name +
		" port=" + port +
		" sslmode=disable TimeZone=UTC"

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect issue report db:", err)
	}

	if err := DB.AutoMigrate(
		&model.Issue{},
		&model.Payment{},
		&model.User{},
		&model.StaffApplication{},
	); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected to DB:", name)
}

func main() {
	initDB()

	producer := kafkax.NewProducer()

	rdb := cache.ConnectRedis(getEnv("REDIS_ADDR", "localhost:6379"))

	siteDomain := getEnv("SITE_DOMAIN", "http://localhost:5173")
	provider := checkout.NewStripeProvider(
		os.Getenv("STRIPE_SECRET"),
		siteDomain+getEnv("CHECKOUT_SUCCESS_PATH", "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		siteDomain+getEnv("CHECKOUT_CANCEL_PATH", "/dashboard/payment-cancelled"),
	)

	jwtSecret := getEnv("JWT_SECRET", "verysecretkey")
	auth := middleware.AuthRequired(jwtSecret)

	// repair channel for approvals recorded without the role promotion
	consumer := kafkax.NewConsumer()
	consumer.Consume("staff.approved", kafkax.StaffApprovedHandler(DB))

	app := fiber.New()
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Issue is reporting")
	})

	routes.RegisterUserRoutes(app, &controller.UserController{DB: DB})
	routes.RegisterIssueRoutes(app, &controller.IssueController{DB: DB})
	routes.RegisterPaymentRoutes(app, &controller.PaymentController{
		DB:       DB,
		Checkout: provider,
		Redis:    rdb,
		Producer: producer,
	}, auth)
	routes.RegisterStaffRoutes(app, &controller.StaffController{
		DB:       DB,
		Producer: producer,
	}, auth)

	port := getEnv("PORT", "3000")
	log.Println("HTTP server running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("fiber error:", err)
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
