package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotel-website/models"
)

// Client talks to the external reservation/room/order REST API. It is built
// once at startup and handed to whatever needs it; there is no package-level
// instance.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ensureTrailingSlash normalizes a request path the way the backend's router
// expects: every route ends with "/". Query strings are preserved.
func ensureTrailingSlash(path string) string {
	if i := strings.Index(path, "?"); i >= 0 {
		p, q := path[:i], path[i:]
		if !strings.HasSuffix(p, "/") {
			p += "/"
		}
		return p + q
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// do performs one request and converts every failure into one of the tagged
// error types, so callers switch on a closed set rather than probing shapes.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+ensureTrailingSlash(path), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return &ServerError{Status: resp.StatusCode}
	case resp.StatusCode >= 400:
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &MalformedResponseError{Reason: err.Error()}
	}
	return nil
}

// ListRooms fetches the full room catalog.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom fetches one room by id.
func (c *Client) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d", id), nil, &room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// AvailableRooms queries rooms free between checkIn and checkOut inclusive.
// roomType is optional and narrows the result to one backend room type.
func (c *Client) AvailableRooms(ctx context.Context, checkIn, checkOut models.Date, roomType string) ([]models.Room, error) {
	q := url.Values{}
	q.Set("check_in", checkIn.String())
	q.Set("check_out", checkOut.String())
	if roomType != "" {
		q.Set("type", roomType)
	}

	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/rooms/available?"+q.Encode(), nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateReservation posts a reservation request and returns the created
// record with its backend-assigned id and status.
func (c *Client) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	var created models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", r, &created); err != nil {
		return models.Reservation{}, err
	}
	return created, nil
}

// GetReservation fetches one reservation by id.
func (c *Client) GetReservation(ctx context.Context, id uint) (models.Reservation, error) {
	var r models.Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservations/%d", id), nil, &r); err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

// CancelReservation asks the backend to cancel a reservation.
func (c *Client) CancelReservation(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/reservations/%d/cancel", id), nil, nil)
}

// CreateOrder posts a food/drink order.
func (c *Client) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", o, &created); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id uint) (models.Order, error) {
	var o models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// ListOrders fetches all orders.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
