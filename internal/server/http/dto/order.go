package dto

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// OrderResponse is the vendor-facing view of one order.
type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	StatusColor   string              `json:"statusColor"`
	Items         []OrderItemResponse `json:"items"`
	TotalPrice    float64             `json:"totalPrice"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	DeliveryBy    string              `json:"deliveryBy"`
	CanAdvance    bool                `json:"canAdvance"`
}

// TabResponse is one status tab with its badge count.
type TabResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

// OrdersResponse carries the selected bucket plus badge counts for every tab.
type OrdersResponse struct {
	ActiveTab string          `json:"activeTab"`
	Tabs      []TabResponse   `json:"tabs"`
	Orders    []OrderResponse `json:"orders"`
}

// AdvanceOrderRequest confirms a status transition. Confirm must be true;
// the endpoint refuses unconfirmed requests so a stray call cannot move a
// customer-facing order.
type AdvanceOrderRequest struct {
	Confirm bool `json:"confirm"`
}
