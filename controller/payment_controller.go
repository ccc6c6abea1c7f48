package controller

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/cache"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/checkout"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/kafka"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/tracking"
)

type PaymentController struct {
	DB       *gorm.DB
	Checkout checkout.Provider
	Redis    *redis.Client
	Producer *kafka.Producer
}

// POST /payment-checkout-session
func (pc *PaymentController) CreateCheckoutSession(c *fiber.Ctx) error {
	var body struct {
		Cost       float64 `json:"cost"`
		IssueTitle string  `json:"issueTitle"`
		Email      string  `json:"email"`
		IssueID    uint    `json:"issueId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	if body.Cost <= 0 || math.IsNaN(body.Cost) {
		return c.Status(400).JSON(fiber.Map{"error": "cost must be a positive number"})
	}
	if body.IssueTitle == "" || body.Email == "" || body.IssueID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "issueTitle, email and issueId are required"})
	}

	sess, err := pc.Checkout.CreateSession(checkout.CreateSessionParams{
		UnitAmount:    int64(math.Round(body.Cost * 100)),
		Currency:      "USD",
		ProductName:   body.IssueTitle,
		CustomerEmail: body.Email,
		IssueID:       strconv.FormatUint(uint64(body.IssueID), 10),
	})
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "failed to create checkout session"})
	}

	return c.JSON(fiber.Map{"url": sess.URL})
}

// PATCH /payment-success?session_id=<id>
//
// Converts a completed checkout session into local state exactly once per
// transaction. The unique index on payments.transaction_id is the real gate;
// the lookup before the insert only short-circuits the common replay (user
// reloading the success page).
func (pc *PaymentController) PaymentSuccess(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "session_id is required"})
	}

	sess, err := pc.Checkout.GetSession(sessionID)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "failed to retrieve checkout session"})
	}

	transactionID := sess.TransactionID

	var existing model.Payment
	if err := pc.DB.Where("transaction_id = ?", transactionID).First(&existing).Error; err == nil {
		return c.JSON(fiber.Map{
			"message":       "already exist",
			"trackingId":    existing.TrackingID,
			"transactionId": transactionID,
		})
	}

	// Only a session Stripe reports as paid mutates anything. Pending,
	// failed and abandoned sessions all fall through untouched.
	if sess.PaymentStatus != "paid" {
		return c.JSON(fiber.Map{"success": false})
	}

	issueID, err := strconv.ParseUint(sess.IssueID, 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid issue reference in session metadata"})
	}

	trackingID := tracking.NewTrackingID()

	payment := model.Payment{
		Amount:        float64(sess.AmountTotal) / 100,
		Email:         sess.CustomerEmail,
		IssueID:       uint(issueID),
		TransactionID: transactionID,
		PaymentStatus: sess.PaymentStatus,
		PaidAt:        time.Now(),
		TrackingID:    trackingID,
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		// Unique transaction_id: a concurrent reconciliation won the
		// insert. Answer with the winner's tracking id.
		var prior model.Payment
		if pc.DB.Where("transaction_id = ?", transactionID).First(&prior).Error == nil {
			return c.JSON(fiber.Map{
				"message":       "already exist",
				"trackingId":    prior.TrackingID,
				"transactionId": transactionID,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to record payment"})
	}

	res := pc.DB.Model(&model.Issue{}).
		Where("id = ?", payment.IssueID).
		Updates(map[string]interface{}{
			"payment_status": "paid",
			"tracking_id":    trackingID,
		})
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update issue"})
	}

	pc.invalidatePayments(payment.Email)

	pc.Producer.PublishPaymentPaidEvent(map[string]interface{}{
		"event_type": "payment.paid",
		"data": map[string]interface{}{
			"transaction_id": transactionID,
			"issue_id":       payment.IssueID,
			"email":          payment.Email,
			"amount":         payment.Amount,
			"tracking_id":    trackingID,
			"paid_at":        payment.PaidAt.Format(time.RFC3339),
		},
	})

	return c.JSON(fiber.Map{
		"success":       true,
		"trackingId":    trackingID,
		"modifyIssue":   fiber.Map{"modifiedCount": res.RowsAffected},
		"transactionId": transactionID,
		"paymentInfo":   payment,
	})
}

// GET /payments?email=<e> (self-access only)
func (pc *PaymentController) List(c *fiber.Ctx) error {
	email := c.Query("email")

	if email != "" {
		if email != c.Locals("user_email").(string) {
			return c.Status(403).JSON(fiber.Map{"error": "forbidden access"})
		}
	}

	cacheKey := fmt.Sprintf("payments:%s", email)
	if pc.Redis != nil {
		if cached, err := pc.Redis.Get(cache.Ctx, cacheKey).Result(); err == nil {
			var list []model.Payment
			_ = json.Unmarshal([]byte(cached), &list)
			return c.JSON(list)
		}
	}

	q := pc.DB.Order("paid_at DESC")
	if email != "" {
		q = q.Where("email = ?", email)
	}

	var payments []model.Payment
	if err := q.Find(&payments).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch payments"})
	}

	if pc.Redis != nil {
		js, _ := json.Marshal(payments)
		pc.Redis.Set(cache.Ctx, cacheKey, js, 5*time.Minute)
	}

	return c.JSON(payments)
}

func (pc *PaymentController) invalidatePayments(email string) {
	if pc.Redis == nil {
		return
	}
	pc.Redis.Del(cache.Ctx, fmt.Sprintf("payments:%s", email))
	pc.Redis.Del(cache.Ctx, "payments:")
}
