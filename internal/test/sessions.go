package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
)

// SessionRepositoryStub keeps sessions in memory for use-case tests.
type SessionRepositoryStub struct {
	CreateFn func(context.Context, *model.Session) error
	GetFn    func(context.Context, string) (*model.Session, error)
	DeleteFn func(context.Context, string) error

	mu       sync.Mutex
	Sessions map[string]*model.Session
}

// NewSessionRepositoryStub creates an empty in-memory repository.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]*model.Session)}
}

func (s *SessionRepositoryStub) Create(ctx context.Context, session *model.Session) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, session)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session.CreatedAt = time.Now()
	s.Sessions[session.ID] = session
	return nil
}

func (s *SessionRepositoryStub) Get(ctx context.Context, id string) (*model.Session, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.Sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return session, nil
}

func (s *SessionRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Sessions, id)
	return nil
}

func (s *SessionRepositoryStub) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, session := range s.Sessions {
		if session.Expired(now) {
			delete(s.Sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (s *SessionRepositoryStub) ListActiveVendorIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var vendorIDs []string
	for _, session := range s.Sessions {
		if session.Expired(now) {
			continue
		}
		if _, dup := seen[session.VendorID]; dup {
			continue
		}
		seen[session.VendorID] = struct{}{}
		vendorIDs = append(vendorIDs, session.VendorID)
		if len(vendorIDs) == limit {
			break
		}
	}
	return vendorIDs, nil
}
