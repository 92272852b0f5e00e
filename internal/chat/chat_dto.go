package chat

type CreateMessageRequest struct {
	Text string `json:"text" validate:"required"`
}
