package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/domain/repository"
)

// AuthUseCase signs vendors in and out against the vendor API and manages
// the resulting server-side sessions.
type AuthUseCase struct {
	api        vendorapi.Client
	sessions   repository.SessionRepository
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(api vendorapi.Client, sessions repository.SessionRepository, sessionTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{api: api, sessions: sessions, sessionTTL: sessionTTL, now: time.Now}
}

// SignIn authenticates the vendor upstream and persists a session holding
// the issued tokens and vendor record.
func (u *AuthUseCase) SignIn(ctx context.Context, phone, password string) (*model.Session, *model.Vendor, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, nil, domainErrors.ErrInvalidInput
	}

	creds, err := u.api.Login(ctx, phone, password)
	if err != nil {
		return nil, nil, err
	}

	var vendor model.Vendor
	if err := json.Unmarshal(creds.UserData, &vendor); err != nil {
		return nil, nil, fmt.Errorf("decode vendor record: %w", err)
	}
	if vendor.ID == "" {
		return nil, nil, fmt.Errorf("login response missing vendor id")
	}

	session := &model.Session{
		ID:           uuid.NewString(),
		VendorID:     vendor.ID,
		UserData:     creds.UserData,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		ExpiresAt:    u.now().Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	return session, &vendor, nil
}

// SignUp registers a new vendor upstream. No session is created; the vendor
// signs in afterwards.
func (u *AuthUseCase) SignUp(ctx context.Context, reg vendorapi.Registration) error {
	if strings.TrimSpace(reg.Phone) == "" || reg.Password == "" {
		return domainErrors.ErrInvalidInput
	}
	return u.api.Register(ctx, reg)
}

// SignOut destroys the session.
func (u *AuthUseCase) SignOut(ctx context.Context, sessionID string) error {
	return u.sessions.Delete(ctx, sessionID)
}

// Resolve loads a session and validates it the way the route guard
// requires: the token must be present and the stored vendor record must
// parse and carry an identifier. Anything else is ErrSessionInvalid, which
// callers treat the same as an absent session.
func (u *AuthUseCase) Resolve(ctx context.Context, sessionID string) (*model.Session, *model.Vendor, error) {
	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	if session.Expired(u.now()) || session.AccessToken == "" {
		return nil, nil, domainErrors.ErrSessionInvalid
	}

	vendor, err := session.Vendor()
	if err != nil || vendor.ID == "" {
		return nil, nil, domainErrors.ErrSessionInvalid
	}

	return session, vendor, nil
}
