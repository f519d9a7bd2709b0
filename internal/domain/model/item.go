package model

// Item is a catalog entry offered by the vendor. Owned by the vendor API.
type Item struct {
	ID         string  `json:"_id"`
	Name       string  `json:"itemName"`
	Price      float64 `json:"itemPrice"`
	VendorID   string  `json:"vendorId"`
	CategoryID string  `json:"categoryId"`
	ImageURL   string  `json:"itemImg"`
}
