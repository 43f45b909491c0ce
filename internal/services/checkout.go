package service

import (
	"context"
	stdErrors "errors"
	"html"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/bakery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils"
	"github.com/microcosm-cc/bluemonday"
)

type CheckoutService interface {
	Config() (*models.CheckoutConfig, error)
	// Current begins or resumes the session's checkout.
	Current(ctx context.Context, sessionID string) (*checkout.Session, error)
	SelectTimeslot(ctx context.Context, sessionID, timestamp string) (*checkout.Session, error)
	Back(ctx context.Context, sessionID string) (*checkout.Session, error)
	// Submit places the order. It is not cancelled by ctx; once started it
	// runs to completion and its outcome is stored on the session.
	Submit(ctx context.Context, sessionID string, req *models.SubmitOrderRequest) (*checkout.Session, error)
	Discard(ctx context.Context, sessionID string) error
}

type CheckoutOptions struct {
	PublishableKey  string
	Currency        string
	SessionTTL      time.Duration
	UpstreamTimeout time.Duration
}

type checkoutService struct {
	machine   *checkout.Machine
	carts     CartService
	timeslots TimeslotService
	notifier  NotificationService
	cache     cache.Cache
	guard     repository.PaymentGuardRepository
	opts      CheckoutOptions
	locks     *SessionLocks
	sanitizer *bluemonday.Policy
}

func NewCheckoutService(
	machine *checkout.Machine,
	carts CartService,
	timeslots TimeslotService,
	notifier NotificationService,
	c cache.Cache,
	guard repository.PaymentGuardRepository,
	locks *SessionLocks,
	opts CheckoutOptions,
) CheckoutService {
	return &checkoutService{
		machine:   machine,
		carts:     carts,
		timeslots: timeslots,
		notifier:  notifier,
		cache:     c,
		guard:     guard,
		opts:      opts,
		locks:     locks,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *checkoutService) available() error {
	if s.opts.PublishableKey == "" {
		return errors.PaymentUnavailableError("Online payment is not available right now")
	}

	return nil
}

func (s *checkoutService) Config() (*models.CheckoutConfig, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	return &models.CheckoutConfig{PublishableKey: s.opts.PublishableKey, Currency: s.opts.Currency}, nil
}

func sessionKey(sessionID string) string {
	return cache.Key(cache.CheckoutKeyPrefix, sessionID)
}

func (s *checkoutService) load(ctx context.Context, sessionID string) (*checkout.Session, error) {
	var session checkout.Session

	found, err := s.cache.Get(ctx, sessionKey(sessionID), &session)
	if err != nil {
		return nil, errors.InternalError("Failed to load checkout").WithError(err)
	}

	if !found {
		return nil, nil
	}

	return &session, nil
}

func (s *checkoutService) save(ctx context.Context, sessionID string, session *checkout.Session) error {
	if err := s.cache.Set(ctx, sessionKey(sessionID), session, s.opts.SessionTTL); err != nil {
		return errors.InternalError("Failed to save checkout").WithError(err)
	}

	return nil
}

// checkoutError maps state machine failures to API errors.
func checkoutError(session *checkout.Session, err error) error {
	switch {
	case stdErrors.Is(err, checkout.ErrIllegalTransition):
		return errors.IllegalStateError("That step is not available right now").WithError(err)
	case stdErrors.Is(err, checkout.ErrEmptyCart):
		return errors.ValidationError("Your cart is empty").WithError(err)
	case stdErrors.Is(err, checkout.ErrInvalidContact):
		return errors.ValidationError("Please enter your name, a valid email address and a phone number").WithError(err)
	case stdErrors.Is(err, checkout.ErrCartChanged):
		return errors.IllegalStateError("Your cart changed, please choose a pickup time again").WithError(err)
	case stdErrors.Is(err, checkout.ErrPaymentDeclined):
		msg := "Your card was declined"
		if session != nil && session.LastError != "" {
			msg = session.LastError
		}

		return errors.PaymentDeclinedError(msg).WithError(err)
	case stdErrors.Is(err, checkout.ErrUpstream):
		msg := "Failed to reach the bakery"
		if session != nil && session.LastError != "" {
			msg = session.LastError
		}

		return errors.UpstreamError(msg).WithError(err)
	}

	if _, ok := errors.IsAppError(err); ok {
		return err
	}

	return errors.InternalError("Checkout failed").WithError(err)
}

func (s *checkoutService) Current(ctx context.Context, sessionID string) (*checkout.Session, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	ctx, unlock := s.locks.Lock(ctx, sessionID)
	defer unlock()

	return s.current(ctx, sessionID)
}

func (s *checkoutService) current(ctx context.Context, sessionID string) (*checkout.Session, error) {
	existing, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view, err := s.carts.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.machine.Resume(existing, view)
	if err != nil {
		return nil, checkoutError(existing, err)
	}

	if err := s.save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *checkoutService) SelectTimeslot(ctx context.Context, sessionID, timestamp string) (*checkout.Session, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	ctx, unlock := s.locks.Lock(ctx, sessionID)
	defer unlock()

	session, err := s.current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	slot, err := s.timeslots.Lookup(ctx, sessionID, timestamp)
	if err != nil {
		return nil, err
	}

	view, err := s.carts.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	upstreamCtx, cancel := utils.WithUpstreamTimeout(ctx, s.opts.UpstreamTimeout)
	defer cancel()

	if err := s.machine.SelectTimeslot(upstreamCtx, session, *slot, view); err != nil {
		if saveErr := s.save(ctx, sessionID, session); saveErr != nil {
			middleware.LoggerFromContext(ctx).Error("Failed to save checkout", slog.Any("error", saveErr))
		}

		return nil, checkoutError(session, err)
	}

	if err := s.save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *checkoutService) Back(ctx context.Context, sessionID string) (*checkout.Session, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	ctx, unlock := s.locks.Lock(ctx, sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, errors.IllegalStateError("Checkout has not started")
	}

	if err := s.machine.Back(session); err != nil {
		return nil, checkoutError(session, err)
	}

	if err := s.save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	return session, nil
}

// clean strips markup from free text and trims it.
func (s *checkoutService) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(v)))
}

func (s *checkoutService) Submit(ctx context.Context, sessionID string, req *models.SubmitOrderRequest) (*checkout.Session, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	logger := middleware.LoggerFromContext(ctx)

	// the order must finish even if the shopper navigates away
	ctx = context.WithoutCancel(ctx)

	allowed, remaining, retryAfter, err := s.guard.CheckPaymentRateLimit(ctx, sessionID)
	if err != nil {
		return nil, errors.InternalError("Failed to check payment attempts").WithError(err)
	}

	if !allowed {
		metrics.CheckoutSubmissionsTotal.WithLabelValues("rate_limited").Inc()
		return nil, errors.TooManyRequestsError("Too many payment attempts, please wait before trying again").
			WithDetail("retry after " + strconv.Itoa(retryAfter) + " seconds")
	}

	token, err := s.guard.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, errors.InternalError("Failed to start submission").WithError(err)
	}

	if token == "" {
		metrics.CheckoutSubmissionsTotal.WithLabelValues("in_progress").Inc()
		return nil, errors.SubmissionInProgressError("Your order is already being submitted")
	}

	defer func() {
		if err := s.guard.ReleaseSubmitLock(ctx, sessionID, token); err != nil {
			logger.Warn("Failed to release submit lock", slog.Any("error", err))
		}
	}()

	ctx, unlock := s.locks.Lock(ctx, sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, errors.IllegalStateError("Checkout has not started")
	}

	view, err := s.carts.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	in := checkout.SubmitInput{
		Contact: models.ContactInfo{
			Name:  s.clean(req.Contact.Name),
			Email: strings.TrimSpace(req.Contact.Email),
			Phone: s.clean(req.Contact.Phone),
		},
		PaymentMethodID: strings.TrimSpace(req.PaymentMethodID),
		Notes:           s.clean(req.Notes),
	}

	logger.Info("Submitting order",
		slog.String("sessionID", sessionID),
		slog.Int("attemptsRemaining", remaining),
		slog.Int64("amount", view.Summary.MinorUnits()),
	)

	start := time.Now()
	upstreamCtx, cancel := utils.WithUpstreamTimeout(ctx, s.opts.UpstreamTimeout)
	err = s.machine.Submit(upstreamCtx, session, in, view)
	cancel()
	metrics.CheckoutSubmitDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CheckoutSubmissionsTotal.WithLabelValues(submitOutcome(err)).Inc()

		if saveErr := s.save(ctx, sessionID, session); saveErr != nil {
			logger.Error("Failed to save checkout", slog.Any("error", saveErr))
		}

		return nil, checkoutError(session, err)
	}

	metrics.CheckoutSubmissionsTotal.WithLabelValues("confirmed").Inc()

	// stored before the cart is cleared
	if err := s.save(ctx, sessionID, session); err != nil {
		logger.Error("Order placed but confirmation not saved", slog.Any("error", err))
	}

	if _, err := s.carts.ClearCart(ctx, sessionID); err != nil {
		logger.Error("Order placed but cart not cleared", slog.Any("error", err))
	}

	if err := s.notifier.SendReceipt(ctx, session.Confirmation); err != nil {
		logger.Warn("Failed to send receipt", slog.Any("error", err))
	}

	return session, nil
}

func submitOutcome(err error) string {
	switch {
	case stdErrors.Is(err, checkout.ErrPaymentDeclined):
		return "declined"
	case stdErrors.Is(err, checkout.ErrInvalidContact):
		return "invalid"
	case stdErrors.Is(err, checkout.ErrUpstream):
		return "upstream_error"
	}

	return "rejected"
}

func (s *checkoutService) Discard(ctx context.Context, sessionID string) error {
	ctx, unlock := s.locks.Lock(ctx, sessionID)
	defer unlock()

	if err := s.cache.Delete(ctx, sessionKey(sessionID)); err != nil {
		return errors.InternalError("Failed to discard checkout").WithError(err)
	}

	return nil
}
