package model

// Vendor is the authenticated actor operating the dashboard. The record is
// issued by the vendor API at sign-in and stored with the session.
type Vendor struct {
	ID      string `json:"user_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
