package models

import "time"

// Notification types.
const (
	NotificationSwapRequest  = "swap_request"
	NotificationSwapResponse = "swap_response"
	NotificationMessage      = "message"
)

// Notification is a per-user feed entry generated as a side effect of ledger
// and messaging events. The message text captures the triggering actor's name
// at creation time; it is not a live reference.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"index;type:varchar(36)"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
