package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-website/apiclient"
	"hotel-website/models"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	assert.NoError(t, err)
	return d
}

type fetchResult struct {
	rooms []models.Room
	err   error
}

// fakeBookingAPI scripts one result per availability call; the last entry
// repeats. The first call can be gated to simulate a slow in-flight fetch.
type fakeBookingAPI struct {
	mu         sync.Mutex
	fetches    []fetchResult
	fetchCalls int
	started    chan struct{}
	gate       chan struct{}

	createErr   error
	createCalls int
	lastCreate  models.Reservation
}

func (f *fakeBookingAPI) AvailableRooms(ctx context.Context, checkIn, checkOut models.Date, roomType string) ([]models.Room, error) {
	f.mu.Lock()
	idx := f.fetchCalls
	f.fetchCalls++
	started, gate := f.started, f.gate
	f.mu.Unlock()

	if idx == 0 && started != nil {
		close(started)
	}
	if idx == 0 && gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.fetches) == 0 {
		return nil, nil
	}
	if idx >= len(f.fetches) {
		idx = len(f.fetches) - 1
	}
	return f.fetches[idx].rooms, f.fetches[idx].err
}

func (f *fakeBookingAPI) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.lastCreate = r
	if f.createErr != nil {
		return models.Reservation{}, f.createErr
	}
	created := r
	created.ID = 99
	created.Status = models.ReservationPending
	return created, nil
}

// fakeClock records backoff sleeps instead of waiting.
type fakeClock struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return time.Unix(1700000000, 0) }

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.mu.Unlock()
}

type toastRecorder struct {
	mu    sync.Mutex
	notes []Notification
}

func (r *toastRecorder) Notify(n Notification) {
	r.mu.Lock()
	r.notes = append(r.notes, n)
	r.mu.Unlock()
}

func (r *toastRecorder) levels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n.Level)
	}
	return out
}

func testRooms() []models.Room {
	return []models.Room{
		{ID: 7, RoomNumber: "101", RoomType: models.RoomTypeDeluxe, PricePerNight: 5000, Capacity: 4, IsAvailable: true},
		{ID: 8, RoomNumber: "102", RoomType: models.RoomTypeStandard, PricePerNight: 6500, Capacity: 2, IsAvailable: true},
		{ID: 9, RoomNumber: "103", RoomType: models.RoomTypeSuite, PricePerNight: 15000, Capacity: 2, IsAvailable: false},
	}
}

func newTestWorkflow(api BookingAPI) (*BookingWorkflow, *fakeClock, *toastRecorder) {
	clock := &fakeClock{}
	toasts := &toastRecorder{}
	w := NewBookingWorkflow(api, WorkflowConfig{
		MaxRetries: 2,
		RetryBase:  time.Second,
		Clock:      clock,
		Notifier:   toasts,
	})
	return w, clock, toasts
}

func TestNightsAndTotalPrice(t *testing.T) {
	cases := []struct {
		checkIn, checkOut string
		price             models.Money
		nights            int
		total             models.Money
	}{
		{"2024-06-01", "2024-06-03", 5000, 2, 10000},
		{"2024-06-01", "2024-06-02", 8500, 1, 8500},
		{"2024-06-01", "2024-06-08", 6500, 7, 45500},
	}
	for _, tc := range cases {
		in := mustDate(t, tc.checkIn)
		out := mustDate(t, tc.checkOut)
		assert.Equal(t, tc.nights, Nights(in, out), "nights %s..%s", tc.checkIn, tc.checkOut)
		room := models.Room{PricePerNight: tc.price}
		assert.Equal(t, tc.total, TotalPrice(room, in, out))
	}
}

func TestSelectDatesRejectsBadRanges(t *testing.T) {
	api := &fakeBookingAPI{}
	w, _, _ := newTestWorkflow(api)

	_, err := w.SelectDates(context.Background(), models.Date{}, models.Date{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "dates", verr.Field)

	same := mustDate(t, "2024-06-01")
	_, err = w.SelectDates(context.Background(), same, same)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "dates", verr.Field)

	assert.Equal(t, 0, api.fetchCalls, "no fetch should be issued for invalid dates")
	assert.Equal(t, "idle", w.Snapshot().State)
}

func TestAvailabilityRetriesNetworkErrors(t *testing.T) {
	api := &fakeBookingAPI{fetches: []fetchResult{
		{err: &apiclient.NetworkError{Err: errors.New("connection refused")}},
		{err: &apiclient.NetworkError{Err: errors.New("connection refused")}},
		{rooms: testRooms()},
	}}
	w, clock, _ := newTestWorkflow(api)

	rooms, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	assert.NoError(t, err)
	assert.Equal(t, 3, api.fetchCalls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, clock.sleeps)
	assert.Len(t, rooms, 2, "unavailable rooms are filtered out")
	assert.Equal(t, "room_selection", w.Snapshot().State)
}

func TestAvailabilityRetryBudgetExhausted(t *testing.T) {
	netErr := &apiclient.NetworkError{Err: errors.New("timeout")}
	api := &fakeBookingAPI{fetches: []fetchResult{{err: netErr}}}
	w, clock, _ := newTestWorkflow(api)

	_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	var got *apiclient.NetworkError
	assert.ErrorAs(t, err, &got)
	assert.Equal(t, 3, api.fetchCalls, "initial attempt plus two retries")
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, clock.sleeps)
	assert.Equal(t, "fetch_error", w.Snapshot().State)
}

func TestAvailabilityServerErrorNotRetried(t *testing.T) {
	api := &fakeBookingAPI{fetches: []fetchResult{{err: &apiclient.ServerError{Status: 500}}}}
	w, clock, toasts := newTestWorkflow(api)

	_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	var srvErr *apiclient.ServerError
	assert.ErrorAs(t, err, &srvErr)
	assert.Equal(t, 1, api.fetchCalls, "5xx must fail after exactly one request")
	assert.Empty(t, clock.sleeps)
	assert.Equal(t, "fetch_error", w.Snapshot().State)
	assert.Contains(t, toasts.levels(), "error")
}

func TestAvailabilityMalformedResponseNotRetried(t *testing.T) {
	api := &fakeBookingAPI{fetches: []fetchResult{{err: &apiclient.MalformedResponseError{Reason: "not an array"}}}}
	w, clock, _ := newTestWorkflow(api)

	_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	var malErr *apiclient.MalformedResponseError
	assert.ErrorAs(t, err, &malErr)
	assert.Equal(t, 1, api.fetchCalls)
	assert.Empty(t, clock.sleeps)
}

func TestDateChangeClearsRoomSelection(t *testing.T) {
	api := &fakeBookingAPI{fetches: []fetchResult{{rooms: testRooms()}}}
	w, _, _ := newTestWorkflow(api)

	_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	assert.NoError(t, err)
	assert.NoError(t, w.SelectRoom(7))
	assert.Equal(t, uint(7), w.Snapshot().Draft.RoomID)

	_, err = w.SelectDates(context.Background(), mustDate(t, "2024-07-01"), mustDate(t, "2024-07-05"))
	assert.NoError(t, err)
	assert.Zero(t, w.Snapshot().Draft.RoomID, "room selection must not survive a date change")
}

func TestSelectRoomRequiresFreshAvailability(t *testing.T) {
	api := &fakeBookingAPI{fetches: []fetchResult{{rooms: testRooms()}}}
	w, _, _ := newTestWorkflow(api)

	var verr *ValidationError
	assert.ErrorAs(t, w.SelectRoom(7), &verr)
	assert.Equal(t, "room", verr.Field)

	_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	assert.NoError(t, err)
	assert.ErrorAs(t, w.SelectRoom(1234), &verr)
	assert.Equal(t, "room", verr.Field)
}

// toRoomSelection walks a workflow to the point where room 7 is selected.
func toRoomSelection(t *testing.T, w *BookingWorkflow) {
	t.Helper()
	_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	assert.NoError(t, err)
	assert.NoError(t, w.SelectRoom(7))
}

func TestValidationFailFastOrder(t *testing.T) {
	full := GuestDetails{FirstName: "Alice", LastName: "Mwangi", Email: "alice@example.com", Phone: "+254700000000", Adults: 2}

	cases := []struct {
		name   string
		mutate func(*GuestDetails)
		field  string
	}{
		{"missing name", func(g *GuestDetails) { g.FirstName, g.LastName = "", "" }, "name"},
		{"missing email", func(g *GuestDetails) { g.Email = "" }, "email"},
		{"missing phone", func(g *GuestDetails) { g.Phone = "" }, "phone"},
		{"name before email", func(g *GuestDetails) { g.FirstName, g.Email = "", "" }, "name"},
		{"capacity exceeded", func(g *GuestDetails) { g.Adults, g.Children = 3, 2 }, "guests"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeBookingAPI{fetches: []fetchResult{{rooms: testRooms()}}}
			w, _, _ := newTestWorkflow(api)
			toRoomSelection(t, w)

			guest := full
			tc.mutate(&guest)
			_, err := w.Submit(context.Background(), guest)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, 0, api.createCalls, "validation failures must never reach the network")
		})
	}
}

func TestSubmitWithoutDatesFailsOnDatesFirst(t *testing.T) {
	api := &fakeBookingAPI{}
	w, _, _ := newTestWorkflow(api)

	_, err := w.Submit(context.Background(), GuestDetails{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "dates", verr.Field, "dates are checked before everything else")
	assert.Equal(t, 0, api.createCalls)
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	api := &fakeBookingAPI{fetches: []fetchResult{{rooms: testRooms()}}}
	w, _, toasts := newTestWorkflow(api)
	toRoomSelection(t, w)

	created, err := w.Submit(context.Background(), GuestDetails{
		FirstName: "Alice", LastName: "Mwangi",
		Email: "alice@example.com", Phone: "+254700000000",
		Adults: 2, Children: 1, SpecialRequests: "late arrival",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(99), created.ID)

	sent := api.lastCreate
	assert.Equal(t, uint(7), sent.Room)
	assert.Equal(t, 3, sent.NumberOfGuests)
	assert.Equal(t, models.Money(10000), sent.TotalPrice, "2 nights at 5000")
	assert.Equal(t, "2024-06-01", sent.CheckInDate.String())
	assert.Equal(t, "2024-06-03", sent.CheckOutDate.String())

	snap := w.Snapshot()
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, BookingDraft{}, snap.Draft)
	assert.Empty(t, snap.AvailableRooms)
	assert.Contains(t, toasts.levels(), "success")
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	api := &fakeBookingAPI{
		fetches:   []fetchResult{{rooms: testRooms()}},
		createErr: &apiclient.NetworkError{Err: errors.New("broken pipe")},
	}
	w, clock, _ := newTestWorkflow(api)
	toRoomSelection(t, w)

	_, err := w.Submit(context.Background(), GuestDetails{
		FirstName: "Alice", LastName: "Mwangi",
		Email: "alice@example.com", Phone: "+254700000000", Adults: 2,
	})
	var netErr *apiclient.NetworkError
	assert.ErrorAs(t, err, &netErr)
	assert.Equal(t, 1, api.createCalls, "submission is never auto-retried")
	assert.Empty(t, clock.sleeps)

	snap := w.Snapshot()
	assert.Equal(t, "room_selection", snap.State)
	assert.Equal(t, uint(7), snap.Draft.RoomID)
	assert.Equal(t, "Alice", snap.Draft.FirstName)
	assert.Len(t, snap.AvailableRooms, 2, "availability list stays intact for resubmission")
}

func TestStaleFetchIsDiscarded(t *testing.T) {
	api := &fakeBookingAPI{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
		fetches: []fetchResult{
			{rooms: []models.Room{{ID: 1, PricePerNight: 1000, Capacity: 2, IsAvailable: true}}},
			{rooms: testRooms()},
		},
	}
	w, _, _ := newTestWorkflow(api)

	firstDone := make(chan error, 1)
	go func() {
		_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
		firstDone <- err
	}()
	<-api.started

	// Visitor changes dates while the first fetch is still in flight.
	rooms, err := w.SelectDates(context.Background(), mustDate(t, "2024-07-01"), mustDate(t, "2024-07-04"))
	assert.NoError(t, err)
	assert.Len(t, rooms, 2)

	close(api.gate)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)

	snap := w.Snapshot()
	assert.Equal(t, "2024-07-01", snap.Draft.CheckIn.String(), "fresher dates must win")
	assert.Len(t, snap.AvailableRooms, 2, "stale result must not overwrite fresher rooms")
}

func TestRetryEmitsCountdownNotices(t *testing.T) {
	api := &fakeBookingAPI{fetches: []fetchResult{
		{err: &apiclient.NetworkError{Err: errors.New("unreachable")}},
		{rooms: testRooms()},
	}}
	w, _, toasts := newTestWorkflow(api)

	_, err := w.SelectDates(context.Background(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"))
	assert.NoError(t, err)

	toasts.mu.Lock()
	defer toasts.mu.Unlock()
	var sawCountdown bool
	for _, n := range toasts.notes {
		if n.Title == "Connection problem" {
			sawCountdown = true
			assert.Contains(t, n.Message, "1s")
		}
	}
	assert.True(t, sawCountdown, "a retry notice should be surfaced before backing off")
}
