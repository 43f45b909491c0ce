package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/configurator"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/bakery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils"
)

// how long a rejected add waits for the shopper to confirm the switch
const pendingSwitchTTL = 30 * time.Minute

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error)
	// AddItem returns a non-nil conflict together with a MODE_CONFLICT error
	// when the item belongs to a different mode than the cart. The item is
	// parked until ConfirmSwitch or CancelSwitch.
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartResponse, *models.ModeConflict, error)
	UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (*models.CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) (*models.CartResponse, error)
	SwitchMode(ctx context.Context, sessionID string, mode models.CartMode) (*models.CartResponse, error)
	ConfirmSwitch(ctx context.Context, sessionID string) (*models.CartResponse, error)
	CancelSwitch(ctx context.Context, sessionID string) error
	View(ctx context.Context, sessionID string) (checkout.CartView, error)
}

type pendingSwitch struct {
	Item models.CartLineItem `json:"item"`
	Mode models.CartMode     `json:"mode"`
}

type cartService struct {
	repo    repository.CartRepository
	catalog CatalogService
	cache   cache.Cache
	locks   *SessionLocks
}

func NewCartService(repo repository.CartRepository, catalog CatalogService, c cache.Cache, locks *SessionLocks) CartService {
	return &cartService{
		repo:    repo,
		catalog: catalog,
		cache:   c,
		locks:   locks,
	}
}

func (s *cartService) open(ctx context.Context, sessionID string) (*cart.Store, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	store, err := cart.Open(dbCtx, repository.ForSession(s.repo, sessionID))
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	if store.Discarded() {
		middleware.LoggerFromContext(ctx).Warn("Discarded unreadable cart", slog.String("sessionID", sessionID))
	}

	return store, nil
}

// withStore runs fn on the session's cart while holding the session lock.
func (s *cartService) withStore(ctx context.Context, sessionID string, fn func(context.Context, *cart.Store) error) (*models.CartResponse, error) {
	ctx, unlock := s.locks.Lock(ctx, sessionID)
	defer unlock()

	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if fn != nil {
		dbCtx, cancel := utils.WithDBTimeout(ctx)
		defer cancel()

		if err := fn(dbCtx, store); err != nil {
			return nil, err
		}
	}

	return s.response(ctx, store), nil
}

func (s *cartService) response(ctx context.Context, store *cart.Store) *models.CartResponse {
	summary := store.Summary(s.catalog.TaxExemption(ctx))

	items := store.Items()
	if items == nil {
		items = []models.CartLineItem{}
	}

	return &models.CartResponse{
		Items:    items,
		Mode:     cart.ToWire(store.Mode()),
		Count:    summary.Count,
		Subtotal: summary.Subtotal,
		Tax:      summary.Tax,
		Total:    summary.Total,
	}
}

// storeError maps cart errors to API errors.
func storeError(op string, err error) error {
	outcome := "error"
	defer func() { metrics.CartMutationsTotal.WithLabelValues(op, outcome).Inc() }()

	switch {
	case stdErrors.Is(err, cart.ErrNoSuchItem):
		outcome = "rejected"
		return errors.ValidationError("No cart item at that position").WithError(err)
	case stdErrors.Is(err, cart.ErrInvalidItem), stdErrors.Is(err, cart.ErrNoMode):
		outcome = "rejected"
		return errors.ValidationError("Invalid cart item").WithError(err)
	default:
		return errors.DatabaseError("Failed to save cart").WithError(err)
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	return s.withStore(ctx, sessionID, nil)
}

// resolve finds the product to add and the mode it is added under. A
// product sold only through a special is bound to the first special that
// lists it when the request names none.
func (s *cartService) resolve(ctx context.Context, req *models.AddItemRequest) (models.Product, cart.Mode, error) {
	if req.SpecialID != 0 {
		special, err := s.catalog.GetSpecial(ctx, req.SpecialID)
		if err != nil {
			return models.Product{}, nil, err
		}

		for _, p := range special.Products {
			if p.ID == req.ProductID {
				return p, cart.Special{ID: special.ID, Name: special.Name}, nil
			}
		}

		return models.Product{}, nil, errors.ValidationError("Product is not part of this special")
	}

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return models.Product{}, nil, err
	}

	ids, err := s.catalog.TypeIDs(ctx)
	if err != nil || ids.Special == 0 || product.TypeID != ids.Special {
		return *product, cart.Regular{}, nil
	}

	specials, err := s.catalog.ListSpecials(ctx)
	if err != nil {
		return models.Product{}, nil, err
	}

	for _, special := range specials {
		if special.Contains(product.ID) {
			return *product, cart.Special{ID: special.ID, Name: special.Name}, nil
		}
	}

	return models.Product{}, nil, errors.ValidationError("Product is only sold through a special that is not running")
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartResponse, *models.ModeConflict, error) {
	product, mode, err := s.resolve(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	item, err := configurator.Apply(product, req)
	if err != nil {
		metrics.CartMutationsTotal.WithLabelValues("add", "rejected").Inc()
		return nil, nil, errors.ValidationError(configurationMessage(err)).WithError(err)
	}

	var conflict *models.ModeConflict

	resp, err := s.withStore(ctx, sessionID, func(ctx context.Context, store *cart.Store) error {
		added, err := store.AddItem(ctx, item, mode)
		if err != nil {
			return storeError("add", err)
		}

		if added {
			metrics.CartMutationsTotal.WithLabelValues("add", "ok").Inc()
			return nil
		}

		metrics.CartMutationsTotal.WithLabelValues("add", "conflict").Inc()

		c := &models.ModeConflict{
			Message:   configurator.ConflictMessage(store.Mode(), mode),
			Current:   *cart.ToWire(store.Mode()),
			Requested: *cart.ToWire(mode),
			Item:      item,
		}

		pending := pendingSwitch{Item: item, Mode: c.Requested}
		if err := s.cache.Set(ctx, cache.Key(cache.PendingKeyPrefix, sessionID), pending, pendingSwitchTTL); err != nil {
			return errors.InternalError("Failed to hold the pending item").WithError(err)
		}

		conflict = c

		return errors.ModeConflictError(c.Message)
	})
	if conflict != nil {
		return nil, conflict, err
	}

	return resp, nil, err
}

func configurationMessage(err error) string {
	var missing *configurator.MissingSelectionError
	if stdErrors.As(err, &missing) {
		return missing.Error()
	}

	switch {
	case stdErrors.Is(err, configurator.ErrUnknownSize):
		return "Unknown size"
	case stdErrors.Is(err, configurator.ErrUnknownCategory), stdErrors.Is(err, configurator.ErrUnknownOption):
		return "Unknown option"
	}

	return "Invalid product configuration"
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*models.CartResponse, error) {
	return s.withStore(ctx, sessionID, func(ctx context.Context, store *cart.Store) error {
		if err := store.UpdateQuantity(ctx, index, quantity); err != nil {
			return storeError("update", err)
		}

		metrics.CartMutationsTotal.WithLabelValues("update", "ok").Inc()

		return nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, index int) (*models.CartResponse, error) {
	return s.withStore(ctx, sessionID, func(ctx context.Context, store *cart.Store) error {
		if err := store.RemoveItem(ctx, index); err != nil {
			return storeError("remove", err)
		}

		metrics.CartMutationsTotal.WithLabelValues("remove", "ok").Inc()

		return nil
	})
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	return s.withStore(ctx, sessionID, func(ctx context.Context, store *cart.Store) error {
		if err := store.Clear(ctx); err != nil {
			return storeError("clear", err)
		}

		metrics.CartMutationsTotal.WithLabelValues("clear", "ok").Inc()

		return nil
	})
}

// modeFromRequest resolves a requested mode, taking a special's name from
// the catalog rather than the client.
func (s *cartService) modeFromRequest(ctx context.Context, wire models.CartMode) (cart.Mode, error) {
	mode, err := cart.FromWire(&wire)
	if err != nil {
		return nil, errors.ValidationError("Invalid cart mode").WithError(err)
	}

	if sp, ok := mode.(cart.Special); ok {
		special, err := s.catalog.GetSpecial(ctx, sp.ID)
		if err != nil {
			return nil, err
		}

		mode = cart.Special{ID: special.ID, Name: special.Name}
	}

	return mode, nil
}

// SwitchMode empties the cart and binds it to mode.
func (s *cartService) SwitchMode(ctx context.Context, sessionID string, wire models.CartMode) (*models.CartResponse, error) {
	mode, err := s.modeFromRequest(ctx, wire)
	if err != nil {
		return nil, err
	}

	return s.withStore(ctx, sessionID, func(ctx context.Context, store *cart.Store) error {
		if err := store.SwitchMode(ctx, mode, nil); err != nil {
			return storeError("switch", err)
		}

		metrics.CartMutationsTotal.WithLabelValues("switch", "ok").Inc()

		return nil
	})
}

func (s *cartService) ConfirmSwitch(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	key := cache.Key(cache.PendingKeyPrefix, sessionID)

	return s.withStore(ctx, sessionID, func(ctx context.Context, store *cart.Store) error {
		var pending pendingSwitch

		found, err := s.cache.Get(ctx, key, &pending)
		if err != nil {
			return errors.InternalError("Failed to read the pending item").WithError(err)
		}

		if !found {
			return errors.NotFoundError("No cart change is waiting for confirmation")
		}

		mode, err := cart.FromWire(&pending.Mode)
		if err != nil {
			return errors.InternalError("Pending item is unreadable").WithError(err)
		}

		if err := store.SwitchMode(ctx, mode, &pending.Item); err != nil {
			return storeError("switch", err)
		}

		metrics.CartMutationsTotal.WithLabelValues("switch", "ok").Inc()

		if err := s.cache.Delete(ctx, key); err != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to drop pending item", slog.Any("error", err))
		}

		return nil
	})
}

func (s *cartService) CancelSwitch(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, cache.Key(cache.PendingKeyPrefix, sessionID)); err != nil {
		return errors.InternalError("Failed to drop the pending item").WithError(err)
	}

	return nil
}

func (s *cartService) View(ctx context.Context, sessionID string) (checkout.CartView, error) {
	ctx, unlock := s.locks.Lock(ctx, sessionID)
	defer unlock()

	store, err := s.open(ctx, sessionID)
	if err != nil {
		return checkout.CartView{}, err
	}

	return checkout.CartView{
		Items:   store.Items(),
		Summary: store.Summary(s.catalog.TaxExemption(ctx)),
	}, nil
}
