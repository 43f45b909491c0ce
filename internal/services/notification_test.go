package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/bakery-storefront/internal/services"
	apiMocks "github.com/aaravmahajanofficial/bakery-storefront/pkg/bakeryapi/mocks"
	emailMocks "github.com/aaravmahajanofficial/bakery-storefront/pkg/sendgrid/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmation() *models.OrderConfirmation {
	return &models.OrderConfirmation{
		OrderID:       981,
		CustomerName:  "Ada Baker",
		CustomerEmail: "ada@example.com",
		Timeslot:      *pickupSlot(),
		Items: []models.CartLineItem{
			lineItem(sourdough(), 2),
			{
				ProductID:   12,
				ProductName: "Birthday Cake",
				Quantity:    1,
				Price:       decimal.RequireFromString("24.00"),
				Selections:  map[string]models.ChosenOption{"flavor": {Value: "Chocolate", Cost: decimal.RequireFromString("2.00")}},
			},
		},
		Subtotal:    decimal.RequireFromString("42.00"),
		Tax:         decimal.RequireFromString("2.08"),
		Total:       decimal.RequireFromString("44.08"),
		ConfirmedAt: time.Now(),
	}
}

func TestSendReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Plain And HTML Bodies", func(t *testing.T) {
		// Arrange
		api := apiMocks.NewMockClient(t)
		email := emailMocks.NewMockEmailService(t)
		var sent *models.EmailNotificationRequest
		email.On("Send", mock.Anything, mock.AnythingOfType("*models.EmailNotificationRequest")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*models.EmailNotificationRequest) }).
			Return(nil).Once()
		svc := service.NewNotificationService(api, email)

		// Act
		err := svc.SendReceipt(ctx, confirmation())

		// Assert
		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.Equal(t, "ada@example.com", sent.To)
		assert.Equal(t, "Ada Baker", sent.ToName)
		assert.Contains(t, sent.Content, "2 x Sourdough Loaf  $16.00")
		assert.Contains(t, sent.Content, "1 x Birthday Cake  $26.00")
		assert.Contains(t, sent.Content, "Total: $44.08")
		assert.Contains(t, sent.HTMLContent, "Order #981")
		assert.Contains(t, sent.HTMLContent, "Friday, March 20 at 3:00 PM")
	})

	t.Run("Success - Disabled Without Email Service", func(t *testing.T) {
		svc := service.NewNotificationService(apiMocks.NewMockClient(t), nil)

		err := svc.SendReceipt(ctx, confirmation())

		assert.NoError(t, err)
	})

	t.Run("Failure - Send Error", func(t *testing.T) {
		// Arrange
		email := emailMocks.NewMockEmailService(t)
		email.On("Send", mock.Anything, mock.Anything).Return(errors.New("failed to send email, status code: 401")).Once()
		svc := service.NewNotificationService(apiMocks.NewMockClient(t), email)

		// Act
		err := svc.SendReceipt(ctx, confirmation())

		// Assert
		assert.ErrorContains(t, err, "status code: 401")
	})
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Normalizes Email", func(t *testing.T) {
		// Arrange
		api := apiMocks.NewMockClient(t)
		api.On("Unsubscribe", mock.Anything, "ada@example.com").Return(nil).Once()
		svc := service.NewNotificationService(api, nil)

		// Act
		err := svc.Unsubscribe(ctx, &models.UnsubscribeRequest{Email: " Ada@Example.com "})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Failure - Backend Error", func(t *testing.T) {
		// Arrange
		api := apiMocks.NewMockClient(t)
		api.On("Unsubscribe", mock.Anything, "ada@example.com").Return(errors.New("boom")).Once()
		svc := service.NewNotificationService(api, nil)

		// Act
		err := svc.Unsubscribe(ctx, &models.UnsubscribeRequest{Email: "ada@example.com"})

		// Assert
		requireCode(t, err, appErrors.ErrCodeUpstream)
	})
}
