package service

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/aaravmahajanofficial/bakery-storefront/pkg/bakeryapi"
)

const timeslotDateLayout = "January 2, 2006"

type TimeslotService interface {
	// Available lists the pickup times offered for the session's cart,
	// grouped by calendar day.
	Available(ctx context.Context, sessionID string) (*models.TimeslotsResponse, error)
	// Lookup returns the offered slot with the given timestamp, or a
	// validation error when it is not currently offered.
	Lookup(ctx context.Context, sessionID, timestamp string) (*models.PickupTimeslot, error)
}

type timeslotService struct {
	api     bakeryapi.Client
	catalog CatalogService
	carts   CartService
	daysOut int
	loc     *time.Location
}

func NewTimeslotService(api bakeryapi.Client, catalog CatalogService, carts CartService, daysOut int, loc *time.Location) TimeslotService {
	if daysOut <= 0 {
		daysOut = 6
	}

	if loc == nil {
		loc = time.Local
	}

	return &timeslotService{api: api, catalog: catalog, carts: carts, daysOut: daysOut, loc: loc}
}

func (s *timeslotService) Available(ctx context.Context, sessionID string) (*models.TimeslotsResponse, error) {
	slots, specialOnly, err := s.offered(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.TimeslotsResponse{Groups: s.group(slots), SpecialOnly: specialOnly}, nil
}

func (s *timeslotService) Lookup(ctx context.Context, sessionID, timestamp string) (*models.PickupTimeslot, error) {
	slots, _, err := s.offered(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		if slots[i].Timestamp == timestamp {
			return &slots[i], nil
		}
	}

	return nil, errors.ValidationError("That pickup time is no longer available").WithDetail(timestamp)
}

// offered works out which schedules apply to the cart. Special items can
// only be picked up during their special. A regular cart gets the regular
// schedule, plus a special's schedule when every item belongs to it.
func (s *timeslotService) offered(ctx context.Context, sessionID string) ([]models.PickupTimeslot, bool, error) {
	view, err := s.carts.View(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	ids, err := s.catalog.TypeIDs(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product types unavailable for timeslots", slog.Any("error", err))
	}

	var specialProducts []int64

	for _, item := range view.Items {
		if ids.Special != 0 && item.TypeID == ids.Special {
			specialProducts = append(specialProducts, item.ProductID)
		}
	}

	merged := map[string]models.TimeslotAvailability{}

	if len(specialProducts) > 0 {
		specials, err := s.catalog.ListSpecials(ctx)
		if err != nil {
			return nil, false, err
		}

		for _, special := range specials {
			if !slices.ContainsFunc(specialProducts, special.Contains) {
				continue
			}

			if err := s.mergeSpecial(ctx, merged, special.ID); err != nil {
				return nil, false, err
			}
		}

		return s.flatten(merged), true, nil
	}

	regular, err := s.api.RegularTimeslots(ctx, s.daysOut)
	if err != nil {
		return nil, false, errors.UpstreamError("Failed to load pickup times").WithError(err)
	}

	maps.Copy(merged, regular)

	if len(view.Items) > 0 {
		specials, err := s.catalog.ListSpecials(ctx)
		if err != nil {
			middleware.LoggerFromContext(ctx).Warn("Specials unavailable for timeslots", slog.Any("error", err))
		}

		for _, special := range specials {
			all := true
			for _, item := range view.Items {
				if !special.Contains(item.ProductID) {
					all = false
					break
				}
			}

			if all {
				if err := s.mergeSpecial(ctx, merged, special.ID); err != nil {
					return nil, false, err
				}

				break
			}
		}
	}

	return s.flatten(merged), false, nil
}

func (s *timeslotService) mergeSpecial(ctx context.Context, into map[string]models.TimeslotAvailability, specialID int64) error {
	slots, err := s.api.SpecialTimeslots(ctx, specialID)
	if err != nil {
		return errors.UpstreamError("Failed to load pickup times").WithError(err)
	}

	maps.Copy(into, slots)

	return nil
}

// flatten drops inactive and unparseable entries and sorts by time.
func (s *timeslotService) flatten(raw map[string]models.TimeslotAvailability) []models.PickupTimeslot {
	slots := make([]models.PickupTimeslot, 0, len(raw))

	for key, availability := range raw {
		if !availability.Active {
			continue
		}

		at, err := models.ParseTimestamp(key)
		if err != nil {
			slog.Warn("Skipping unparseable timeslot", slog.String("timestamp", key))
			continue
		}

		slots = append(slots, models.PickupTimeslot{
			ID:         key,
			Timestamp:  key,
			Time:       at.In(s.loc),
			AmountLeft: availability.AmountLeft,
			Active:     true,
		})
	}

	slices.SortFunc(slots, func(a, b models.PickupTimeslot) int {
		return a.Time.Compare(b.Time)
	})

	return slots
}

func (s *timeslotService) group(slots []models.PickupTimeslot) []models.TimeslotGroup {
	groups := []models.TimeslotGroup{}

	for _, slot := range slots {
		date := slot.Time.Format(timeslotDateLayout)

		if n := len(groups); n > 0 && groups[n-1].Date == date {
			groups[n-1].Slots = append(groups[n-1].Slots, slot)
			continue
		}

		groups = append(groups, models.TimeslotGroup{Date: date, Slots: []models.PickupTimeslot{slot}})
	}

	return groups
}
