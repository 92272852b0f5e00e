package appointment

import "time"

type CreateAppointmentRequest struct {
	Title     string     `json:"title" validate:"required"`
	ClientIDs []string   `json:"clientIds"`
	UserIDs   []string   `json:"userIds"`
	StartTime *time.Time `json:"startTime" validate:"required"`
	// EndTime diterima demi kompatibilitas payload tapi selalu diabaikan;
	// durasi appointment tetap satu jam.
	EndTime   *time.Time `json:"endTime"`
	CompanyID string     `json:"companyId" validate:"required"`
}

type UpdateAppointmentRequest struct {
	Title     *string    `json:"title" validate:"omitempty,min=1"`
	ClientIDs *[]string  `json:"clientIds"`
	UserIDs   *[]string  `json:"userIds"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}
