package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/domain/repository"
	"github.com/grubline/vendordash/internal/pkg/secrets"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Narrowed so
// tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage persists vendor sessions in PostgreSQL. Upstream tokens are
// encrypted before they reach the table.
type Storage struct {
	pool   pgxPool
	cipher secrets.Cipher
	logger *slog.Logger
}

type sessionRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, cipher secrets.Cipher, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, cipher: cipher, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Sessions returns the session repository backed by this storage.
func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
            id UUID PRIMARY KEY,
            vendor_id TEXT NOT NULL,
            user_data TEXT NOT NULL,
            access_token TEXT NOT NULL,
            refresh_token TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            expires_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_vendor ON sessions(vendor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	accessToken, err := r.storage.cipher.Seal(session.AccessToken)
	if err != nil {
		return fmt.Errorf("seal access token: %w", err)
	}
	refreshToken, err := r.storage.cipher.Seal(session.RefreshToken)
	if err != nil {
		return fmt.Errorf("seal refresh token: %w", err)
	}

	const query = `INSERT INTO sessions (id, vendor_id, user_data, access_token, refresh_token, expires_at)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at`
	err = r.storage.pool.QueryRow(ctx, query,
		session.ID, session.VendorID, string(session.UserData),
		accessToken, refreshToken, session.ExpiresAt,
	).Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	const query = `SELECT id, vendor_id, user_data, access_token, refresh_token, created_at, expires_at
                   FROM sessions WHERE id=$1`
	var (
		session      model.Session
		userData     string
		accessToken  string
		refreshToken string
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.VendorID, &userData,
		&accessToken, &refreshToken, &session.CreatedAt, &session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	session.UserData = []byte(userData)
	if session.AccessToken, err = r.storage.cipher.Open(accessToken); err != nil {
		r.storage.logger.Warn("stored access token unreadable", slog.String("session", id))
		return nil, domainErrors.ErrSessionInvalid
	}
	if session.RefreshToken, err = r.storage.cipher.Open(refreshToken); err != nil {
		r.storage.logger.Warn("stored refresh token unreadable", slog.String("session", id))
		return nil, domainErrors.ErrSessionInvalid
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM sessions WHERE id=$1`
	if _, err := r.storage.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= $1`
	tag, err := r.storage.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *sessionRepository) ListActiveVendorIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	const query = `SELECT DISTINCT vendor_id FROM sessions WHERE expires_at > $1 LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendorIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		vendorIDs = append(vendorIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vendorIDs, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
