package appointment

import "time"

// Appointment selalu berdurasi tepat satu jam: EndTime diturunkan dari
// StartTime saat create dan tidak pernah diset langsung oleh client.
type Appointment struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ClientIDs []string  `json:"clientIds"`
	UserIDs   []string  `json:"userIds"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CompanyID string    `json:"companyId"`
}

const StorageKey = "clarityflow-appointments"

const Duration = time.Hour
