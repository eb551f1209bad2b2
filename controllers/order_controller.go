package controllers

import (
	"errors"
	"net/http"

	"hotel-website/models"
	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type orderItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type createOrderRequest struct {
	CustomerName        string             `json:"customer_name"`
	PhoneNumber         string             `json:"phone_number"`
	PaymentMethod       string             `json:"payment_method"`
	TableNumber         string             `json:"table_number"`
	RoomNumber          string             `json:"room_number"`
	SpecialInstructions string             `json:"special_instructions"`
	OrderItems          []orderItemRequest `json:"order_items"`
}

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// CreateOrder validates a menu order and forwards it to the backend. There
// is no automatic retry: a failed order is surfaced once and the caller
// resubmits explicitly.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]models.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    models.Money(item.Price),
			Category: item.Category,
		})
	}

	created, err := oc.svc.Submit(c.Request.Context(), services.OrderDraft{
		CustomerName:        req.CustomerName,
		PhoneNumber:         req.PhoneNumber,
		PaymentMethod:       req.PaymentMethod,
		TableNumber:         req.TableNumber,
		RoomNumber:          req.RoomNumber,
		SpecialInstructions: req.SpecialInstructions,
		Items:               items,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.JSONFieldError(c, http.StatusUnprocessableEntity, verr.Field, verr.Message)
			return
		}
		respondUpstreamError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}
