package models

import "time"

// Message is a direct message between two users.
type Message struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FromUserID string    `json:"fromUserId" gorm:"index;type:varchar(36)"`
	ToUserID   string    `json:"toUserId" gorm:"index;type:varchar(36)"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MessageView is a Message augmented with counterpart projections for display.
type MessageView struct {
	Message
	FromUser UserSummary `json:"fromUser"`
	ToUser   UserSummary `json:"toUser"`
}
