package kafka

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
)

type StaffApprovedEvent struct {
	EventType string `json:"event_type"`
	Data      struct {
		ApplicationID uint   `json:"application_id"`
		Email         string `json:"email"`
	} `json:"data"`
}

// StaffApprovedHandler re-asserts the role promotion for an approved
// application. The approval endpoint already promotes in the same DB
// transaction; this handler repairs stores touched by older writers that
// did the two updates separately.
func StaffApprovedHandler(db *gorm.DB) func([]byte) {
	return func(msg []byte) {
		var event StaffApprovedEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			log.Printf("invalid staff.approved payload: %v", err)
			return
		}

		res := db.Model(&model.User{}).
			Where("email = ? AND role <> ?", event.Data.Email, "staff").
			Update("role", "staff")
		if res.Error != nil {
			log.Printf("failed to promote user %s: %v", event.Data.Email, res.Error)
			return
		}

		if res.RowsAffected > 0 {
			log.Printf("user %s promoted to staff (application %d)",
				event.Data.Email, event.Data.ApplicationID)
		}
	}
}
