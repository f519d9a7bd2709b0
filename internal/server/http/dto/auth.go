package dto

// SignInRequest carries vendor credentials.
type SignInRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUpRequest carries a new vendor registration.
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VendorResponse is the signed-in vendor's profile.
type VendorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// SignInResponse points the client at the dashboard after sign-in.
type SignInResponse struct {
	Vendor     VendorResponse `json:"vendor"`
	RedirectTo string         `json:"redirectTo"`
}

// SignUpResponse points the client at sign-in after registration.
type SignUpResponse struct {
	RedirectTo string `json:"redirectTo"`
}

// DashboardResponse is the landing view payload.
type DashboardResponse struct {
	Vendor        VendorResponse `json:"vendor"`
	PendingOrders int            `json:"pendingOrders"`
}
