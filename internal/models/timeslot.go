package models

import "time"

// TimeslotAvailability is one entry of the backend's timestamp-keyed map.
type TimeslotAvailability struct {
	AmountLeft int  `json:"amountLeft"`
	Active     bool `json:"active"`
}

type PickupTimeslot struct {
	ID         string    `json:"id"`
	Timestamp  string    `json:"timestamp"`
	Time       time.Time `json:"time"`
	AmountLeft int       `json:"amountLeft"`
	Active     bool      `json:"active"`
}

type TimeslotGroup struct {
	Date  string           `json:"date"`
	Slots []PickupTimeslot `json:"slots"`
}

type TimeslotsResponse struct {
	Groups      []TimeslotGroup `json:"groups"`
	SpecialOnly bool            `json:"specialOnly"`
}

type SelectTimeslotRequest struct {
	Timestamp string `json:"timestamp" validate:"required"`
}
