package models

// Analytics holds the aggregate counters served to admins.
type Analytics struct {
	TotalUsers         int     `json:"totalUsers"`
	ActiveUsers        int     `json:"activeUsers"`
	TotalSwaps         int     `json:"totalSwaps"`
	PendingSwaps       int     `json:"pendingSwaps"`
	CompletedSwaps     int     `json:"completedSwaps"`
	TotalMessages      int     `json:"totalMessages"`
	TotalNotifications int     `json:"totalNotifications"`
	AverageRating      float64 `json:"averageRating"`
}
