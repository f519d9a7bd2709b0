package repository

import (
	"context"
	"time"

	"github.com/grubline/vendordash/internal/domain/model"
)

// SessionRepository describes persistence operations with vendor sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	ListActiveVendorIDs(ctx context.Context, now time.Time, limit int) ([]string, error)
}
