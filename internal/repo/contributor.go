package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// ContributorRepo defines the persistence operations for Contributors.
// Usernames are stored as given; callers normalize them first.
type ContributorRepo interface {
	// Create inserts a new contributor and returns the persisted record.
	// Returns domain.ErrConflict if the username is already taken.
	Create(ctx context.Context, c domain.Contributor) (domain.Contributor, error)

	// GetByUsername retrieves a contributor by username.
	// Returns domain.ErrNotFound if no contributor has that username.
	GetByUsername(ctx context.Context, username string) (domain.Contributor, error)

	// IncrementContributions adds exactly one to the contribution count and
	// returns the updated record. Returns domain.ErrNotFound if the
	// contributor does not exist.
	IncrementContributions(ctx context.Context, username string) (domain.Contributor, error)
}

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// pgContributorRepo is the Postgres implementation of ContributorRepo.
type pgContributorRepo struct {
	db db
}

// NewContributorRepo constructs a ContributorRepo backed by the provided db connection.
func NewContributorRepo(db db) ContributorRepo {
	return &pgContributorRepo{db: db}
}

const contributorColumns = `id, username, display_name, password_hash, badge, contributions, created_at`

// Create inserts a contributor row. The id and created_at are DB-generated.
func (r *pgContributorRepo) Create(ctx context.Context, c domain.Contributor) (domain.Contributor, error) {
	const q = `
		INSERT INTO contributors (username, display_name, password_hash, badge, contributions)
		VALUES (@username, @display_name, @password_hash, @badge, @contributions)
		RETURNING ` + contributorColumns

	args := pgx.NamedArgs{
		"username":      c.Username,
		"display_name":  c.DisplayName,
		"password_hash": c.PasswordHash,
		"badge":         c.Badge,
		"contributions": c.Contributions,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanContributor(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.Contributor{}, fmt.Errorf("repo.ContributorRepo.Create: %w", domain.ErrConflict)
		}
		return domain.Contributor{}, fmt.Errorf("repo.ContributorRepo.Create: %w", err)
	}
	return result, nil
}

// GetByUsername retrieves a contributor by its unique username.
func (r *pgContributorRepo) GetByUsername(ctx context.Context, username string) (domain.Contributor, error) {
	const q = `SELECT ` + contributorColumns + ` FROM contributors WHERE username = @username`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username})
	result, err := scanContributor(row)
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("repo.ContributorRepo.GetByUsername: %w", err)
	}
	return result, nil
}

// IncrementContributions bumps the counter in a single statement so
// concurrent submissions never lose an increment.
func (r *pgContributorRepo) IncrementContributions(ctx context.Context, username string) (domain.Contributor, error) {
	const q = `
		UPDATE contributors
		SET contributions = contributions + 1
		WHERE username = @username
		RETURNING ` + contributorColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username})
	result, err := scanContributor(row)
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("repo.ContributorRepo.IncrementContributions: %w", err)
	}
	return result, nil
}

// scanContributor maps a single database row into a domain.Contributor.
func scanContributor(s scanner) (domain.Contributor, error) {
	var (
		c  domain.Contributor
		id pgtype.UUID
	)

	err := s.Scan(&id, &c.Username, &c.DisplayName, &c.PasswordHash, &c.Badge, &c.Contributions, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contributor{}, domain.ErrNotFound
		}
		return domain.Contributor{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}
