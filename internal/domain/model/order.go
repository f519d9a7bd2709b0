package model

import "time"

// OrderStatus describes the fulfilment lifecycle of a customer order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every lifecycle state in tab order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusReady,
	OrderStatusPickedUp,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// DefaultTab is the bucket shown when no tab is selected.
const DefaultTab = OrderStatusPending

// Transitions is the single source of truth for status changes the
// dashboard is allowed to issue. The backend owns the full graph; the
// dashboard only ever advances a pending order to ready. Cancellation and
// the remaining forward states are driven by other actors.
var Transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusReady},
}

// CanTransition reports whether the dashboard may request moving an order
// from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range Transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Known reports whether status is one of the lifecycle states.
func (s OrderStatus) Known() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Name     string  `json:"itemName"`
	Price    float64 `json:"itemPrice"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"itemImg"`
}

// Order is the vendor-facing view of a customer order. The authoritative
// copy lives in the vendor API; the dashboard holds a snapshot that is only
// mutated after the backend confirms a status change.
type Order struct {
	ID            string      `json:"_id"`
	VendorID      string      `json:"vendorId"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items"`
	TotalPrice    float64     `json:"totalPrice"`
	CustomerName  string      `json:"userName"`
	CustomerPhone string      `json:"userPhone"`
	DeliveryBy    string      `json:"estimatedDeliveryTime"`
}

// StatusColor returns the badge color keyed by lifecycle state. Unknown
// states fall back to gray.
func StatusColor(s OrderStatus) string {
	switch s {
	case OrderStatusPending:
		return "yellow"
	case OrderStatusConfirmed:
		return "blue"
	case OrderStatusReady:
		return "purple"
	case OrderStatusPickedUp:
		return "indigo"
	case OrderStatusDelivered:
		return "green"
	case OrderStatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// FormatDeliveryTime renders an RFC 3339 timestamp the way the dashboard
// shows delivery estimates. Values that do not parse render as a
// placeholder instead of failing.
func FormatDeliveryTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "Invalid Date"
	}
	return t.Format("January 2, 2006 03:04 PM")
}
