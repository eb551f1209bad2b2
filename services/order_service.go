package services

import (
	"context"
	"fmt"
	"strings"

	"hotel-website/models"
)

// OrderCreator is the slice of the API client the order flow needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
}

// OrderDraft is the in-memory food/drink order form.
type OrderDraft struct {
	CustomerName        string
	PhoneNumber         string
	PaymentMethod       string
	TableNumber         string
	RoomNumber          string
	SpecialInstructions string
	Items               []models.OrderItem
}

// OrderService validates and forwards menu orders. Same shape of logic as
// the booking flow, but orders are one-shot: submission failures are
// surfaced once and never retried automatically.
type OrderService struct {
	api OrderCreator
}

func NewOrderService(api OrderCreator) *OrderService {
	return &OrderService{api: api}
}

// OrderTotal sums quantity × price over the items.
func OrderTotal(items []models.OrderItem) models.Money {
	var total models.Money
	for _, item := range items {
		total += models.Money(float64(item.Quantity) * float64(item.Price))
	}
	return total
}

var paymentMethods = map[string]bool{
	models.PaymentCash:  true,
	models.PaymentMpesa: true,
	models.PaymentCard:  true,
}

// Validate runs the order form checks in order and returns the first
// violation: name → phone → payment method → items → quantities.
func (s *OrderService) Validate(d OrderDraft) *ValidationError {
	if strings.TrimSpace(d.CustomerName) == "" {
		return &ValidationError{Field: "customer_name", Message: "Please enter your name."}
	}
	if strings.TrimSpace(d.PhoneNumber) == "" {
		return &ValidationError{Field: "phone_number", Message: "Please enter your phone number."}
	}
	if !paymentMethods[strings.ToUpper(strings.TrimSpace(d.PaymentMethod))] {
		return &ValidationError{Field: "payment_method", Message: "Please choose cash, M-Pesa or card."}
	}
	if len(d.Items) == 0 {
		return &ValidationError{Field: "order_items", Message: "Your order is empty. Please add at least one item."}
	}
	for _, item := range d.Items {
		if item.Quantity < 1 {
			return &ValidationError{
				Field:   "order_items",
				Message: fmt.Sprintf("Quantity for %q must be at least 1.", item.Name),
			}
		}
	}
	return nil
}

// Submit validates the draft, computes the total and posts the order.
func (s *OrderService) Submit(ctx context.Context, d OrderDraft) (models.Order, error) {
	if verr := s.Validate(d); verr != nil {
		return models.Order{}, verr
	}

	order := models.Order{
		CustomerName:        strings.TrimSpace(d.CustomerName),
		PhoneNumber:         strings.TrimSpace(d.PhoneNumber),
		OrderItems:          d.Items,
		TotalAmount:         OrderTotal(d.Items),
		PaymentMethod:       strings.ToUpper(strings.TrimSpace(d.PaymentMethod)),
		TableNumber:         strings.TrimSpace(d.TableNumber),
		RoomNumber:          strings.TrimSpace(d.RoomNumber),
		SpecialInstructions: strings.TrimSpace(d.SpecialInstructions),
	}
	return s.api.CreateOrder(ctx, order)
}
