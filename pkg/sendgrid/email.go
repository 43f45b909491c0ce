package sendgrid

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
	GetSendGridClient() *sg.Client
}

type emailService struct {
	client    *sg.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sg.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(req.ToName, req.To))

	for _, cc := range req.CC {
		personalization.AddCCs(mail.NewEmail("", cc))
	}

	for _, bcc := range req.BCC {
		personalization.AddBCCs(mail.NewEmail("", bcc))
	}

	personalization.Subject = req.Subject

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))
	message.AddPersonalizations(personalization)

	// SendGrid wants text/plain first and rejects empty content blocks.
	message.AddContent(mail.NewContent("text/plain", req.Content))

	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient exposes the underlying client, mostly so tests can
// point it at a local server.
func (e *emailService) GetSendGridClient() *sg.Client {
	return e.client
}
