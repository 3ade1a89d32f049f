package dto

type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`

	// ReplyTo names a top-level message in the same room. Anything
	// else is ignored and the message becomes top-level.
	ReplyTo *uint `json:"reply_to"`
}
