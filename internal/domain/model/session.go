package model

import (
	"encoding/json"
	"time"
)

// Session is the server-side proof of a vendor's authentication. It carries
// the tokens issued by the vendor API and the raw vendor record returned at
// sign-in. Created on sign-in, deleted on sign-out, purged after expiry.
type Session struct {
	ID           string
	VendorID     string
	UserData     []byte
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Vendor parses the stored vendor record. A record that does not decode or
// lacks a vendor identifier makes the session invalid.
func (s *Session) Vendor() (*Vendor, error) {
	var v Vendor
	if err := json.Unmarshal(s.UserData, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Expired reports whether the session passed its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
