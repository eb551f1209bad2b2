package models

// Reservation statuses assigned by the backend.
const (
	ReservationPending    = "PENDING"
	ReservationConfirmed  = "CONFIRMED"
	ReservationCheckedIn  = "CHECKED_IN"
	ReservationCheckedOut = "CHECKED_OUT"
	ReservationCancelled  = "CANCELLED"
)

// Reservation is the wire shape for POST /reservations/. ID, Status and the
// timestamps are assigned by the backend and only present on responses.
type Reservation struct {
	ID              uint   `json:"id,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Room            uint   `json:"room"`
	CheckInDate     Date   `json:"check_in_date"`
	CheckOutDate    Date   `json:"check_out_date"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
	TotalPrice      Money  `json:"total_price"`
	Status          string `json:"status,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}
