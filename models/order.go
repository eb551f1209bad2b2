package models

// Payment methods accepted by the ordering backend.
const (
	PaymentCash  = "CASH"
	PaymentMpesa = "MPESA"
	PaymentCard  = "CARD"
)

// Menu item categories.
const (
	CategoryFood  = "FOOD"
	CategoryDrink = "DRINK"
)

// OrderItem is one line of a food/drink order.
type OrderItem struct {
	ID       uint   `json:"id,omitempty"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    Money  `json:"price"`
	Category string `json:"category"`
}

// Order is the wire shape for POST /orders/.
type Order struct {
	ID                  uint        `json:"id,omitempty"`
	CustomerName        string      `json:"customer_name"`
	PhoneNumber         string      `json:"phone_number"`
	OrderItems          []OrderItem `json:"order_items"`
	TotalAmount         Money       `json:"total_amount"`
	PaymentMethod       string      `json:"payment_method"`
	TableNumber         string      `json:"table_number,omitempty"`
	RoomNumber          string      `json:"room_number,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Status              string      `json:"status,omitempty"`
	CreatedAt           string      `json:"created_at,omitempty"`
	UpdatedAt           string      `json:"updated_at,omitempty"`
}
