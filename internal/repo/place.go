// Package repo contains all persistence logic for the heritage archive.
// Each resource has its own file with an interface and its implementations:
// Postgres for the network-backed deployment, a JSON file or memory for the
// single-process one. No business logic lives here — only storage and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PlaceRepo defines the persistence operations for Places.
// The service layer depends on this interface, not on a concrete store.
type PlaceRepo interface {
	// Upsert inserts a place keyed by its ID, replacing any place with the
	// same ID. A replacement keeps the key's position in List order and its
	// original CreatedAt. Returns the stored record.
	Upsert(ctx context.Context, place domain.Place) (domain.Place, error)

	// GetByID retrieves a single place.
	// Returns domain.ErrNotFound if no place with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Place, error)

	// List returns every place in storage order: first insertion of each key.
	List(ctx context.Context) ([]domain.Place, error)
}

// pgPlaceRepo is the Postgres implementation of PlaceRepo.
// Storage order is the position column, which an upsert never rewrites.
type pgPlaceRepo struct {
	db db
}

// NewPlaceRepo constructs a PlaceRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPlaceRepo(db db) PlaceRepo {
	return &pgPlaceRepo{db: db}
}

// pgComment is the JSONB element shape of places.comments.
type pgComment struct {
	User string `json:"user"`
	Text string `json:"text"`
}

const placeColumns = `id, name, type, region, area, era, story, tags, image, contributor_id, comments, created_at`

// Upsert inserts or replaces a place row. ON CONFLICT leaves position and
// created_at untouched so a replaced key keeps its place in the listing.
func (r *pgPlaceRepo) Upsert(ctx context.Context, place domain.Place) (domain.Place, error) {
	const q = `
		INSERT INTO places (id, name, type, region, area, era, story, tags, image, contributor_id, comments)
		VALUES (@id, @name, @type, @region, @area, @era, @story, @tags, @image, @contributor_id, @comments)
		ON CONFLICT (id) DO UPDATE
		SET name           = EXCLUDED.name,
		    type           = EXCLUDED.type,
		    region         = EXCLUDED.region,
		    area           = EXCLUDED.area,
		    era            = EXCLUDED.era,
		    story          = EXCLUDED.story,
		    tags           = EXCLUDED.tags,
		    image          = EXCLUDED.image,
		    contributor_id = EXCLUDED.contributor_id,
		    comments       = EXCLUDED.comments
		RETURNING ` + placeColumns

	tags := place.Tags
	if tags == nil {
		tags = []string{}
	}
	comments := make([]pgComment, len(place.Comments))
	for i, c := range place.Comments {
		comments[i] = pgComment{User: c.User, Text: c.Text}
	}

	args := pgx.NamedArgs{
		"id":             place.ID,
		"name":           place.Name,
		"type":           place.Type,
		"region":         place.Region,
		"area":           place.Area,
		"era":            place.Era,
		"story":          place.Story,
		"tags":           tags,
		"image":          place.Image,
		"contributor_id": place.ContributorID,
		"comments":       comments,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPlace(row)
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.Upsert: %w", err)
	}
	return result, nil
}

// GetByID retrieves a place by primary key.
func (r *pgPlaceRepo) GetByID(ctx context.Context, id string) (domain.Place, error) {
	q := `SELECT ` + placeColumns + ` FROM places WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPlace(row)
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all places ordered by position (first insertion).
func (r *pgPlaceRepo) List(ctx context.Context) ([]domain.Place, error) {
	q := `SELECT ` + placeColumns + ` FROM places ORDER BY position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: %w", err)
	}
	defer rows.Close()

	places := []domain.Place{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlaceRepo.List: scan: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: rows: %w", err)
	}
	return places, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPlace maps a single database row into a domain.Place.
func scanPlace(s scanner) (domain.Place, error) {
	var (
		p        domain.Place
		comments []pgComment
	)

	err := s.Scan(&p.ID, &p.Name, &p.Type, &p.Region, &p.Area, &p.Era, &p.Story,
		&p.Tags, &p.Image, &p.ContributorID, &comments, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Place{}, domain.ErrNotFound
		}
		return domain.Place{}, err
	}

	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.Comments = make([]domain.Comment, len(comments))
	for i, c := range comments {
		p.Comments[i] = domain.Comment{User: c.User, Text: c.Text}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
