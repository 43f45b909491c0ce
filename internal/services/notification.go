package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/aaravmahajanofficial/bakery-storefront/pkg/bakeryapi"
	"github.com/aaravmahajanofficial/bakery-storefront/pkg/sendgrid"
)

type NotificationService interface {
	Unsubscribe(ctx context.Context, req *models.UnsubscribeRequest) error
	SendReceipt(ctx context.Context, confirmation *models.OrderConfirmation) error
}

type notificationService struct {
	api          bakeryapi.Client
	emailService sendgrid.EmailService
}

// NewNotificationService builds the service. A nil emailService disables
// receipts.
func NewNotificationService(api bakeryapi.Client, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{api: api, emailService: emailService}
}

func (n *notificationService) Unsubscribe(ctx context.Context, req *models.UnsubscribeRequest) error {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if err := n.api.Unsubscribe(ctx, email); err != nil {
		return errors.UpstreamError("Failed to unsubscribe").WithError(err)
	}

	return nil
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<h2>Thank you for your order, {{.CustomerName}}!</h2>
{{if .OrderID}}<p>Order #{{.OrderID}}</p>{{end}}
<p>Pickup: {{.Pickup}}</p>
<table>
{{range .Lines}}<tr><td>{{.Quantity}} × {{.Name}}</td><td>${{.Total}}</td></tr>
{{end}}</table>
<p>Subtotal: ${{.Subtotal}}<br>Tax: ${{.Tax}}<br><strong>Total: ${{.Total}}</strong></p>`))

type receiptLine struct {
	Name     string
	Quantity int
	Total    string
}

type receiptView struct {
	CustomerName string
	OrderID      int64
	Pickup       string
	Lines        []receiptLine
	Subtotal     string
	Tax          string
	Total        string
}

func newReceiptView(c *models.OrderConfirmation) receiptView {
	v := receiptView{
		CustomerName: c.CustomerName,
		OrderID:      c.OrderID,
		Pickup:       c.Timeslot.Time.Format("Monday, January 2 at 3:04 PM"),
		Subtotal:     c.Subtotal.StringFixed(2),
		Tax:          c.Tax.StringFixed(2),
		Total:        c.Total.StringFixed(2),
	}

	for _, item := range c.Items {
		v.Lines = append(v.Lines, receiptLine{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Total:    cart.LineTotal(item).StringFixed(2),
		})
	}

	return v
}

func (n *notificationService) SendReceipt(ctx context.Context, c *models.OrderConfirmation) error {
	if n.emailService == nil || c == nil || c.CustomerEmail == "" {
		return nil
	}

	view := newReceiptView(c)

	var html bytes.Buffer
	if err := receiptTemplate.Execute(&html, view); err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Thank you for your order, %s!\n", view.CustomerName)
	fmt.Fprintf(&text, "Pickup: %s\n\n", view.Pickup)

	for _, line := range view.Lines {
		fmt.Fprintf(&text, "%d x %s  $%s\n", line.Quantity, line.Name, line.Total)
	}

	fmt.Fprintf(&text, "\nSubtotal: $%s\nTax: $%s\nTotal: $%s\n", view.Subtotal, view.Tax, view.Total)

	req := &models.EmailNotificationRequest{
		To:          c.CustomerEmail,
		ToName:      c.CustomerName,
		Subject:     "Your bakery order is confirmed",
		Content:     text.String(),
		HTMLContent: html.String(),
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		return fmt.Errorf("send receipt: %w", err)
	}

	return nil
}
