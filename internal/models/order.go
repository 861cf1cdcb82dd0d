package models

import "time"

type Order struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	Whatsapp     string    `json:"whatsapp" gorm:"not null"`
	Email        string    `json:"email"`
	Product      string    `json:"product" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"default:1"`
	Address      string    `json:"address"`
	Note         string    `json:"note"`
	Status       string    `json:"status" gorm:"default:'pending'"` // pending, confirmed, processing, shipped, completed, cancelled
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every accepted order status. Transitions are not
// constrained to a workflow; any status may move to any other.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderProcessing,
	OrderShipped,
	OrderCompleted,
	OrderCancelled,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
