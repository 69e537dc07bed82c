package models

import "time"

// SwapRequest status values. A request starts pending; accepted and rejected
// are terminal as far as the workflow is concerned, though the transition
// endpoint does not forbid further writes.
const (
	SwapStatusPending  = "pending"
	SwapStatusAccepted = "accepted"
	SwapStatusRejected = "rejected"
)

// SwapRequest is one user's proposal to exchange skills with another.
type SwapRequest struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FromUserID string    `json:"fromUserId" gorm:"index;type:varchar(36)"`
	ToUserID   string    `json:"toUserId" gorm:"index;type:varchar(36)"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SwapRequestView is a SwapRequest augmented with counterpart projections for
// display.
type SwapRequestView struct {
	SwapRequest
	FromUser UserSummary `json:"fromUser"`
	ToUser   UserSummary `json:"toUser"`
}
