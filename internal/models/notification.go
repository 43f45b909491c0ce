package models

type EmailNotificationRequest struct {
	To          string   `json:"to"                     validate:"required,email"`
	ToName      string   `json:"to_name,omitempty"`
	CC          []string `json:"cc,omitempty"           validate:"omitempty,dive,email"`
	BCC         []string `json:"bcc,omitempty"          validate:"omitempty,dive,email"`
	Subject     string   `json:"subject"                validate:"required"`
	Content     string   `json:"content"                validate:"required"`
	HTMLContent string   `json:"html_content,omitempty"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
