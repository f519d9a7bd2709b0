package model

// Category groups catalog items. Owned by the vendor API.
type Category struct {
	ID       string `json:"_id"`
	Name     string `json:"categoryName"`
	VendorID string `json:"vendorId"`
}
