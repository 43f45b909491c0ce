package service_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	breadTypeID    int64 = 1
	cakeTypeID     int64 = 2
	specialTypeID  int64 = 5
	cateringTypeID int64 = 7
)

func int64Ptr(v int64) *int64 { return &v }

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()

	_, client := newTestRedis(t)

	return cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})
}

func productTypes() []models.ProductType {
	return []models.ProductType{
		{ID: breadTypeID, Name: models.ProductTypeBread},
		{ID: cakeTypeID, Name: "Cake"},
		{ID: specialTypeID, Name: models.ProductTypeSpecial},
		{ID: cateringTypeID, Name: models.ProductTypeCatering},
	}
}

func sourdough() models.Product {
	return models.Product{ID: 1, Title: "Sourdough Loaf", Price: decimal.RequireFromString("8.00"), TypeID: breadTypeID, Active: true}
}

func birthdayCake() models.Product {
	return models.Product{
		ID:     12,
		Title:  "Birthday Cake",
		Price:  decimal.RequireFromString("30.00"),
		TypeID: cakeTypeID,
		Active: true,
		Sizes: []models.ProductSize{
			{ID: 3, ProductID: 12, Size: "8 inch", Cost: decimal.RequireFromString("24.00")},
			{ID: 4, ProductID: 12, Size: "10 inch", Cost: decimal.RequireFromString("32.00")},
		},
		SelectionValues: models.OptionsBySize{
			"flavor": {
				"8 inch":  {{ID: 100, Value: "Chocolate"}, {ID: 101, Value: "Vanilla"}},
				"10 inch": {{ID: 102, Value: "Chocolate"}},
			},
		},
	}
}

func hotCrossBuns() models.Product {
	return models.Product{ID: 40, Title: "Hot Cross Buns", Price: decimal.RequireFromString("2.25"), TypeID: specialTypeID, Active: true}
}

func partyTray() models.Product {
	return models.Product{ID: 50, Title: "Party Tray", Price: decimal.RequireFromString("45.00"), TypeID: cateringTypeID, Active: true}
}

func legacySpecial() models.Product {
	return models.Product{ID: 60, Title: "Old Special", Price: decimal.RequireFromString("5.00"), TypeID: models.LegacySpecialTypeID}
}

func easterSpecial(start, end time.Time) models.Special {
	return models.Special{
		ID:       9,
		Name:     "Easter",
		Start:    models.Timestamp{Time: start},
		End:      models.Timestamp{Time: end},
		Active:   true,
		Products: []models.Product{hotCrossBuns()},
	}
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()

	want := decimal.RequireFromString(expected)
	if !want.Equal(actual) {
		t.Errorf("expected %s, got %s", want.StringFixed(2), actual.StringFixed(2))
	}
}
