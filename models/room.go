package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Room types the reservation backend knows about.
const (
	RoomTypeStandard  = "STANDARD"
	RoomTypeDeluxe    = "DELUXE"
	RoomTypeSuite     = "SUITE"
	RoomTypeExecutive = "EXECUTIVE"
)

// Money covers price fields the backend serializes inconsistently: sometimes
// a JSON number, sometimes a numeric string like "8500.00".
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*m = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid money value %q", raw)
		}
		*m = Money(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// Room mirrors the record shape served by the reservation backend. Rooms are
// read-only on this side: each availability query replaces the whole list.
type Room struct {
	ID            uint     `json:"id"`
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"`
	PricePerNight Money    `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	IsAvailable   bool     `json:"is_available"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	ImageURLs     []string `json:"image_urls"`
}
