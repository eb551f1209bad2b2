package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"hotel-website/apiclient"
	"hotel-website/models"
)

// BookingState tracks where a visitor's reservation form is in its lifecycle.
type BookingState int

const (
	StateIdle BookingState = iota
	StateFetchingAvailability
	StateRoomSelection
	StateFetchError
	StateSubmitting
	StateSubmitted
)

func (s BookingState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetchingAvailability:
		return "fetching_availability"
	case StateRoomSelection:
		return "room_selection"
	case StateFetchError:
		return "fetch_error"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// ErrSuperseded is returned when an availability fetch finishes after the
// visitor has already changed dates again; its result is discarded.
var ErrSuperseded = errors.New("availability fetch superseded by a newer date change")

// ValidationError is the first violated form rule. Field names the form
// control the message targets.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// Notification is a toast surfaced to the visitor. Every state transition
// emits one; it is the workflow's only feedback channel.
type Notification struct {
	Level   string `json:"level"` // info, success, error
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Clock abstracts time so the retry backoff is testable without real timers.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// RoomFinder and ReservationCreator are the two slices of the API client the
// workflow needs; tests supply scripted fakes.
type RoomFinder interface {
	AvailableRooms(ctx context.Context, checkIn, checkOut models.Date, roomType string) ([]models.Room, error)
}

type ReservationCreator interface {
	CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error)
}

type BookingAPI interface {
	RoomFinder
	ReservationCreator
}

// BookingDraft is the in-memory reservation form. It becomes a persisted
// reservation only after a successful submission to the backend.
type BookingDraft struct {
	CheckIn         models.Date `json:"check_in"`
	CheckOut        models.Date `json:"check_out"`
	RoomID          uint        `json:"room_id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Adults          int         `json:"adults"`
	Children        int         `json:"children"`
	SpecialRequests string      `json:"special_requests"`
}

// GuestDetails carries the personal fields of the form into Submit.
type GuestDetails struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Adults          int
	Children        int
	SpecialRequests string
}

// WorkflowConfig tunes a BookingWorkflow; zero values fall back to the
// defaults (2 retries, 1s base backoff, real clock, discarded toasts).
// A negative MaxRetries disables retries entirely.
type WorkflowConfig struct {
	MaxRetries int
	RetryBase  time.Duration
	Clock      Clock
	Notifier   Notifier
}

// BookingWorkflow drives one visitor's reservation form from empty to
// submitted. All state is owned here and guarded by mu; nothing outside the
// workflow mutates it.
type BookingWorkflow struct {
	api      BookingAPI
	clock    Clock
	notifier Notifier

	maxRetries int
	retryBase  time.Duration

	mu       sync.Mutex
	state    BookingState
	draft    BookingDraft
	rooms    []models.Room
	fetchSeq uint64
}

func NewBookingWorkflow(api BookingAPI, cfg WorkflowConfig) *BookingWorkflow {
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NotifierFunc(func(Notification) {})
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	} else if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}
	return &BookingWorkflow{
		api:        api,
		clock:      cfg.Clock,
		notifier:   cfg.Notifier,
		maxRetries: cfg.MaxRetries,
		retryBase:  cfg.RetryBase,
		state:      StateIdle,
	}
}

// Nights counts billable nights between two midnight-normalized dates,
// rounding partial days up.
func Nights(checkIn, checkOut models.Date) int {
	return int(math.Ceil(checkOut.Time.Sub(checkIn.Time).Hours() / 24))
}

// TotalPrice is nights × the room's nightly rate.
func TotalPrice(room models.Room, checkIn, checkOut models.Date) models.Money {
	return models.Money(float64(Nights(checkIn, checkOut)) * float64(room.PricePerNight))
}

// SelectDates records a check-in/check-out pair and fetches availability for
// it. Any previously selected room is cleared first: availability is
// date-dependent, so a stale pick must never outlive the dates it was made
// for. Returns the available rooms on success.
func (w *BookingWorkflow) SelectDates(ctx context.Context, checkIn, checkOut models.Date) ([]models.Room, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, &ValidationError{Field: "dates", Message: "Please select check-in and check-out dates."}
	}
	if !checkOut.After(checkIn) {
		return nil, &ValidationError{Field: "dates", Message: "Check-out date must be after check-in date."}
	}

	w.mu.Lock()
	w.draft.CheckIn = checkIn
	w.draft.CheckOut = checkOut
	w.draft.RoomID = 0
	w.state = StateFetchingAvailability
	w.fetchSeq++
	seq := w.fetchSeq
	w.mu.Unlock()

	w.notifier.Notify(Notification{
		Level:   "info",
		Title:   "Checking availability",
		Message: fmt.Sprintf("Looking for rooms from %s to %s…", checkIn, checkOut),
	})

	rooms, err := w.fetchWithRetry(ctx, checkIn, checkOut)

	w.mu.Lock()
	defer w.mu.Unlock()

	// A newer date change has been issued while this fetch was in flight;
	// its result must not overwrite the fresher state.
	if seq != w.fetchSeq {
		return nil, ErrSuperseded
	}

	if err != nil {
		w.state = StateFetchError
		title, msg := fetchErrorMessage(err)
		w.notifier.Notify(Notification{Level: "error", Title: title, Message: msg})
		return nil, err
	}

	available := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.IsAvailable {
			available = append(available, r)
		}
	}
	w.rooms = available
	w.state = StateRoomSelection

	if len(available) == 0 {
		w.notifier.Notify(Notification{
			Level:   "info",
			Title:   "No rooms available",
			Message: "No rooms are available for those dates. Please try a different date range.",
		})
	} else {
		w.notifier.Notify(Notification{
			Level:   "success",
			Title:   "Rooms found",
			Message: fmt.Sprintf("%d room(s) available for your dates.", len(available)),
		})
	}
	return available, nil
}

// fetchWithRetry runs the availability query with bounded retries. Only
// network errors are retried; 5xx and malformed payloads fail immediately.
// Backoff doubles per attempt: 1s, 2s, 4s, …
func (w *BookingWorkflow) fetchWithRetry(ctx context.Context, checkIn, checkOut models.Date) ([]models.Room, error) {
	for attempt := 0; ; attempt++ {
		rooms, err := w.api.AvailableRooms(ctx, checkIn, checkOut, "")
		if err == nil {
			return rooms, nil
		}

		var netErr *apiclient.NetworkError
		if !errors.As(err, &netErr) || attempt >= w.maxRetries {
			return nil, err
		}

		delay := w.retryBase << attempt
		w.notifier.Notify(Notification{
			Level:   "info",
			Title:   "Connection problem",
			Message: fmt.Sprintf("Couldn't reach the reservation service, retrying in %s…", delay),
		})
		w.clock.Sleep(ctx, delay)
		if ctx.Err() != nil {
			return nil, err
		}
	}
}

// SelectRoom picks a room from the freshest availability fetch.
func (w *BookingWorkflow) SelectRoom(id uint) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateRoomSelection {
		return &ValidationError{Field: "room", Message: "Please select your dates first."}
	}
	room, ok := w.roomByID(id)
	if !ok {
		return &ValidationError{Field: "room", Message: "That room is not available for your selected dates."}
	}
	w.draft.RoomID = id
	w.notifier.Notify(Notification{
		Level:   "info",
		Title:   "Room selected",
		Message: fmt.Sprintf("Room %s (%s) selected.", room.RoomNumber, room.RoomType),
	})
	return nil
}

func (w *BookingWorkflow) roomByID(id uint) (models.Room, bool) {
	for _, r := range w.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// validateDraft runs the form checks in their fixed order and returns the
// first violation: dates → date order → room → name → email → phone →
// capacity. Caller holds mu.
func (w *BookingWorkflow) validateDraft() *ValidationError {
	d := &w.draft
	if d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		return &ValidationError{Field: "dates", Message: "Please select check-in and check-out dates."}
	}
	if !d.CheckOut.After(d.CheckIn) {
		return &ValidationError{Field: "dates", Message: "Check-out date must be after check-in date."}
	}
	if d.RoomID == 0 {
		return &ValidationError{Field: "room", Message: "Please select a room."}
	}
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your full name."}
	}
	if strings.TrimSpace(d.Email) == "" {
		return &ValidationError{Field: "email", Message: "Please enter your email address."}
	}
	if strings.TrimSpace(d.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "Please enter your phone number."}
	}
	if room, ok := w.roomByID(d.RoomID); ok && room.Capacity > 0 {
		if guests := d.Adults + d.Children; guests > room.Capacity {
			return &ValidationError{
				Field:   "guests",
				Message: fmt.Sprintf("This room sleeps up to %d guests, but you selected %d.", room.Capacity, guests),
			}
		}
	}
	return nil
}

// Submit merges the guest details into the draft, validates it, and posts
// the reservation. Success resets the whole form; failure leaves everything
// intact so the visitor can resubmit without retyping. Writes are never
// retried automatically.
func (w *BookingWorkflow) Submit(ctx context.Context, guest GuestDetails) (models.Reservation, error) {
	w.mu.Lock()

	w.draft.FirstName = strings.TrimSpace(guest.FirstName)
	w.draft.LastName = strings.TrimSpace(guest.LastName)
	w.draft.Email = strings.TrimSpace(guest.Email)
	w.draft.Phone = strings.TrimSpace(guest.Phone)
	w.draft.SpecialRequests = strings.TrimSpace(guest.SpecialRequests)
	w.draft.Adults = guest.Adults
	if w.draft.Adults <= 0 {
		w.draft.Adults = 1
	}
	w.draft.Children = guest.Children
	if w.draft.Children < 0 {
		w.draft.Children = 0
	}

	if verr := w.validateDraft(); verr != nil {
		w.mu.Unlock()
		w.notifier.Notify(Notification{Level: "error", Title: "Check your details", Message: verr.Message})
		return models.Reservation{}, verr
	}

	room, _ := w.roomByID(w.draft.RoomID)
	reservation := models.Reservation{
		FirstName:       w.draft.FirstName,
		LastName:        w.draft.LastName,
		Email:           w.draft.Email,
		Phone:           w.draft.Phone,
		Room:            w.draft.RoomID,
		CheckInDate:     w.draft.CheckIn,
		CheckOutDate:    w.draft.CheckOut,
		NumberOfGuests:  w.draft.Adults + w.draft.Children,
		SpecialRequests: w.draft.SpecialRequests,
		TotalPrice:      TotalPrice(room, w.draft.CheckIn, w.draft.CheckOut),
	}
	w.state = StateSubmitting
	w.mu.Unlock()

	created, err := w.api.CreateReservation(ctx, reservation)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = StateRoomSelection
		title, msg := submitErrorMessage(err)
		w.notifier.Notify(Notification{Level: "error", Title: title, Message: msg})
		return models.Reservation{}, err
	}

	w.state = StateSubmitted
	w.notifier.Notify(Notification{
		Level:   "success",
		Title:   "Booking Request Submitted!",
		Message: "We'll confirm your reservation shortly via email.",
	})
	w.resetLocked()
	return created, nil
}

// Reset clears the form back to Idle.
func (w *BookingWorkflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *BookingWorkflow) resetLocked() {
	w.draft = BookingDraft{}
	w.rooms = nil
	w.state = StateIdle
}

// BookingSnapshot is a point-in-time view of the form for the UI.
type BookingSnapshot struct {
	State          string        `json:"state"`
	Draft          BookingDraft  `json:"draft"`
	AvailableRooms []models.Room `json:"available_rooms"`
	Nights         int           `json:"nights,omitempty"`
	TotalPrice     models.Money  `json:"total_price,omitempty"`
}

// Snapshot reports the current form state. Nights and TotalPrice are filled
// once both dates and a room are chosen.
func (w *BookingWorkflow) Snapshot() BookingSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := BookingSnapshot{
		State:          w.state.String(),
		Draft:          w.draft,
		AvailableRooms: w.rooms,
	}
	if !w.draft.CheckIn.IsZero() && w.draft.CheckOut.After(w.draft.CheckIn) {
		if room, ok := w.roomByID(w.draft.RoomID); ok {
			snap.Nights = Nights(w.draft.CheckIn, w.draft.CheckOut)
			snap.TotalPrice = TotalPrice(room, w.draft.CheckIn, w.draft.CheckOut)
		}
	}
	return snap
}

func fetchErrorMessage(err error) (string, string) {
	var (
		netErr *apiclient.NetworkError
		srvErr *apiclient.ServerError
		malErr *apiclient.MalformedResponseError
	)
	switch {
	case errors.As(err, &netErr):
		return "Connection problem", "We couldn't reach the reservation service. Please check your connection and try again."
	case errors.As(err, &srvErr):
		return "Service unavailable", "The reservation service had a problem. Please try again later."
	case errors.As(err, &malErr):
		return "Unexpected response", "The reservation service returned an unexpected response. Please try again later."
	default:
		return "Something went wrong", "We couldn't check availability. Please try again."
	}
}

func submitErrorMessage(err error) (string, string) {
	var (
		netErr *apiclient.NetworkError
		srvErr *apiclient.ServerError
		apiErr *apiclient.APIError
	)
	switch {
	case errors.As(err, &netErr):
		return "Connection problem", "We couldn't send your booking. Please check your connection and submit again."
	case errors.As(err, &srvErr):
		return "Service unavailable", "The reservation service had a problem. Please try again later."
	case errors.As(err, &apiErr):
		return "Booking rejected", "The reservation service rejected the request. Please review your details and try again."
	default:
		return "Something went wrong", "We couldn't submit your booking. Please try again."
	}
}
