package service

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/aaravmahajanofficial/bakery-storefront/pkg/bakeryapi"
	"golang.org/x/sync/singleflight"
)

// TypeIDs are the product type ids the storefront treats specially, looked
// up by name. A zero id means the backend has no such type.
type TypeIDs struct {
	Bread    int64 `json:"bread"`
	Special  int64 `json:"special"`
	Catering int64 `json:"catering"`
}

type CatalogService interface {
	GetMenu(ctx context.Context) (*models.MenuResponse, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListSpecials(ctx context.Context) ([]models.Special, error)
	GetSpecial(ctx context.Context, id int64) (*models.Special, error)
	TypeIDs(ctx context.Context) (TypeIDs, error)
	// TaxExemption never fails; when the types cannot be loaded the
	// exemption is unresolved and everything is taxed.
	TaxExemption(ctx context.Context) cart.TaxExemption
}

type catalogService struct {
	api   bakeryapi.Client
	cache cache.Cache
	ttl   time.Duration
	group singleflight.Group
	now   func() time.Time
}

func NewCatalogService(api bakeryapi.Client, c cache.Cache, ttl time.Duration) CatalogService {
	return &catalogService{api: api, cache: c, ttl: ttl, now: time.Now}
}

// cached reads key from the cache and otherwise loads it once, however many
// requests are waiting on the same key. Cache failures only cost a backend
// round trip.
func cached[T any](ctx context.Context, s *catalogService, key string, load func(context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)

	var value T

	found, err := s.cache.Get(ctx, key, &value)
	if err != nil {
		logger.Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	if found {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return value, nil
	}

	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	v, err, _ := s.group.Do(key, func() (any, error) {
		loaded, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, key, loaded, s.ttl); err != nil {
			logger.Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
		}

		return loaded, nil
	})
	if err != nil {
		return value, err
	}

	return v.(T), nil
}

func (s *catalogService) products(ctx context.Context) ([]models.Product, error) {
	products, err := cached(ctx, s, cache.Key(cache.CatalogKeyPrefix, "products"), s.api.ListProducts)
	if err != nil {
		return nil, errors.UpstreamError("Failed to load products").WithError(err)
	}

	return products, nil
}

func (s *catalogService) specials(ctx context.Context) ([]models.Special, error) {
	specials, err := cached(ctx, s, cache.Key(cache.CatalogKeyPrefix, "specials"), s.api.ListSpecials)
	if err != nil {
		return nil, errors.UpstreamError("Failed to load specials").WithError(err)
	}

	return specials, nil
}

func (s *catalogService) TypeIDs(ctx context.Context) (TypeIDs, error) {
	types, err := cached(ctx, s, cache.Key(cache.CatalogKeyPrefix, "types"), s.api.ListProductTypes)
	if err != nil {
		return TypeIDs{}, errors.UpstreamError("Failed to load product types").WithError(err)
	}

	var ids TypeIDs

	for _, t := range types {
		switch t.Name {
		case models.ProductTypeBread:
			ids.Bread = t.ID
		case models.ProductTypeSpecial:
			ids.Special = t.ID
		case models.ProductTypeCatering:
			ids.Catering = t.ID
		}
	}

	return ids, nil
}

func (s *catalogService) TaxExemption(ctx context.Context) cart.TaxExemption {
	ids, err := s.TypeIDs(ctx)
	if err != nil || ids.Bread == 0 {
		middleware.LoggerFromContext(ctx).Warn("Bread type unresolved, taxing every item", slog.Any("error", err))
		return cart.TaxExemption{}
	}

	return cart.TaxExemption{BreadTypeID: ids.Bread, Resolved: true}
}

// GetMenu lists what can be ordered from the regular menu: specials,
// catering and the retired special category are left out.
func (s *catalogService) GetMenu(ctx context.Context) (*models.MenuResponse, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	// An unresolved type id is zero and never matches a real product.
	ids, _ := s.TypeIDs(ctx)

	menu := make([]models.Product, 0, len(products))

	for _, p := range products {
		if p.TypeID == models.LegacySpecialTypeID {
			continue
		}

		if ids.Special != 0 && p.TypeID == ids.Special {
			continue
		}

		if ids.Catering != 0 && p.TypeID == ids.Catering {
			continue
		}

		p.NeedsConfiguration = p.HasOptions()
		menu = append(menu, p)
	}

	return &models.MenuResponse{Products: menu, Total: len(menu)}, nil
}

// GetProduct looks in the full product list first and falls back to the
// products embedded in specials.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			p := products[i]
			p.NeedsConfiguration = p.HasOptions()

			return &p, nil
		}
	}

	specials, err := s.specials(ctx)
	if err == nil {
		for _, special := range specials {
			for _, p := range special.Products {
				if p.ID == id {
					p.NeedsConfiguration = p.HasOptions()
					return &p, nil
				}
			}
		}
	}

	return nil, errors.NotFoundError("Product not found").WithDetail(strconv.FormatInt(id, 10))
}

// ListSpecials returns specials that are running or have not ended yet,
// earliest start first.
func (s *catalogService) ListSpecials(ctx context.Context) ([]models.Special, error) {
	specials, err := s.specials(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	visible := make([]models.Special, 0, len(specials))

	for _, sp := range specials {
		if !sp.Active && !sp.End.After(now) {
			continue
		}

		sp.Upcoming = sp.Start.After(now)

		for i := range sp.Products {
			sp.Products[i].NeedsConfiguration = sp.Products[i].HasOptions()
		}

		visible = append(visible, sp)
	}

	slices.SortStableFunc(visible, func(a, b models.Special) int {
		return a.Start.Compare(b.Start.Time)
	})

	return visible, nil
}

func (s *catalogService) GetSpecial(ctx context.Context, id int64) (*models.Special, error) {
	specials, err := s.ListSpecials(ctx)
	if err != nil {
		return nil, err
	}

	for i := range specials {
		if specials[i].ID == id {
			return &specials[i], nil
		}
	}

	return nil, errors.NotFoundError("Special not found").WithDetail(strconv.FormatInt(id, 10))
}
