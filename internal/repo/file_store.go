package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// FileStore is the file-backed record store. It keeps the whole collection
// in memory and rewrites the JSON source on every change.
//
// Writes within one process are serialized. Separate processes sharing the
// same file are not coordinated: the last Save wins.
type FileStore struct {
	path string
	log  *slog.Logger
	now  func() time.Time

	mu      sync.RWMutex
	set     *placeSet
	readErr error // set while the source exists but could not be read
}

// Ensure FileStore satisfies PlaceRepo.
var _ PlaceRepo = (*FileStore)(nil)

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithClock overrides the clock used to stamp CreatedAt on first insertion.
func WithClock(now func() time.Time) FileStoreOption {
	return func(s *FileStore) { s.now = now }
}

// NewFileStore constructs an empty FileStore for the JSON source at path.
// Call Load before serving reads; OpenFileStore does both.
func NewFileStore(path string, log *slog.Logger, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path: path,
		log:  log,
		now:  time.Now,
		set:  newPlaceSet(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenFileStore constructs a FileStore and loads its source.
func OpenFileStore(ctx context.Context, path string, log *slog.Logger, opts ...FileStoreOption) *FileStore {
	s := NewFileStore(path, log, opts...)
	s.Load(ctx)
	return s
}

// Load reads the JSON source and replaces the in-memory collection with it.
//
// Load never fails. When the source is missing, blank, an empty object, or
// not parseable, the seed collection is used and written back so the next
// Load reads it. A failed write-back is logged and the seed is still served.
//
// Any other read error (permissions, I/O) leaves the source untouched: the
// seed is served from memory and Upsert refuses to write until a later
// Load or Save succeeds.
func (s *FileStore) Load(ctx context.Context) []domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	places, err := s.read()
	if err == nil && len(places) > 0 {
		s.set = newPlaceSet(places)
		s.readErr = nil
		s.log.InfoContext(ctx, "record store loaded", "path", s.path, "places", len(places))
		return s.set.list()
	}

	seed := newPlaceSet(s.seed())
	if err != nil && !reseedable(err) {
		s.log.ErrorContext(ctx, "record store source unreadable, serving seed without writing", "path", s.path, "error", err)
		s.set = seed
		s.readErr = err
		return s.set.list()
	}

	s.log.WarnContext(ctx, "record store source unusable, reseeding", "path", s.path, "reason", describeLoadFailure(err))
	if err := s.write(seed.list()); err != nil {
		s.log.ErrorContext(ctx, "record store reseed write failed", "path", s.path, "error", err)
	}
	s.set = seed
	s.readErr = nil
	return s.set.list()
}

// seed returns the seed collection stamped with the store clock.
func (s *FileStore) seed() []domain.Place {
	now := s.now().UTC()
	places := domain.SeedPlaces()
	for i := range places {
		if places[i].CreatedAt.IsZero() {
			places[i].CreatedAt = now
		}
	}
	return places
}

// Save replaces the whole persisted collection with places, then the
// in-memory snapshot. Duplicate IDs collapse with the last one winning.
// On error neither the file nor the snapshot changes.
func (s *FileStore) Save(ctx context.Context, places []domain.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := newPlaceSet(places)
	if err := s.write(next.list()); err != nil {
		return fmt.Errorf("repo.FileStore.Save: %w", err)
	}
	s.set = next
	s.readErr = nil
	s.log.DebugContext(ctx, "record store saved", "path", s.path, "places", len(next.keys))
	return nil
}

// Upsert inserts or replaces place and persists the collection.
// CreatedAt is stamped the first time a key is inserted and kept on replacement.
func (s *FileStore) Upsert(ctx context.Context, place domain.Place) (domain.Place, error) {
	if place.ID == "" {
		return domain.Place{}, fmt.Errorf("repo.FileStore.Upsert: %w: id is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readErr != nil {
		return domain.Place{}, fmt.Errorf("repo.FileStore.Upsert: %w: source could not be read: %v", domain.ErrPersistence, s.readErr)
	}

	stored := normalizePlace(place)
	if prev, ok := s.set.byID[stored.ID]; ok && !prev.CreatedAt.IsZero() {
		stored.CreatedAt = prev.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now().UTC()
	}

	next := s.set.clone()
	next.put(stored)
	if err := s.write(next.list()); err != nil {
		return domain.Place{}, fmt.Errorf("repo.FileStore.Upsert: %w", err)
	}
	s.set = next
	return stored.Clone(), nil
}

// GetByID returns the place stored under id.
func (s *FileStore) GetByID(_ context.Context, id string) (domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.set.byID[id]
	if !ok {
		return domain.Place{}, fmt.Errorf("repo.FileStore.GetByID: %w", domain.ErrNotFound)
	}
	return p.Clone(), nil
}

// List returns the current snapshot. It never fails.
func (s *FileStore) List(_ context.Context) ([]domain.Place, error) {
	return s.All(), nil
}

// All returns a copy of the current snapshot in collection order.
func (s *FileStore) All() []domain.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.list()
}

// read parses the source file. An empty result with a nil error means the
// file held an empty object.
func (s *FileStore) read() ([]domain.Place, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptySource
	}
	places, err := decodePlaces(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedSource, err)
	}
	return places, nil
}

// write replaces the source atomically: temp file in the same directory,
// fsync, rename. Readers never observe a partial file.
func (s *FileStore) write(places []domain.Place) error {
	data, err := encodePlaces(places)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", domain.ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", domain.ErrPersistence, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod: %v", domain.ErrPersistence, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: rename: %v", domain.ErrPersistence, err)
	}
	return nil
}

var (
	errEmptySource     = errors.New("source is empty")
	errMalformedSource = errors.New("source is malformed")
)

// reseedable reports whether a read error means the source holds no usable
// records and may be overwritten with the seed.
func reseedable(err error) bool {
	return errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, errEmptySource) ||
		errors.Is(err, errMalformedSource)
}

func describeLoadFailure(err error) string {
	switch {
	case err == nil:
		return "no places"
	case errors.Is(err, os.ErrNotExist):
		return "missing"
	default:
		return err.Error()
	}
}

// ---- ordered collection ------------------------------------------------------

// placeSet is an insertion-ordered id → place mapping. Replacing an
// existing key keeps its position.
type placeSet struct {
	keys []string
	byID map[string]domain.Place
}

func newPlaceSet(places []domain.Place) *placeSet {
	s := &placeSet{keys: []string{}, byID: map[string]domain.Place{}}
	for _, p := range places {
		s.put(normalizePlace(p))
	}
	return s
}

func (s *placeSet) put(p domain.Place) {
	if _, ok := s.byID[p.ID]; !ok {
		s.keys = append(s.keys, p.ID)
	}
	s.byID[p.ID] = p
}

func (s *placeSet) clone() *placeSet {
	out := &placeSet{
		keys: append([]string{}, s.keys...),
		byID: make(map[string]domain.Place, len(s.byID)),
	}
	for k, v := range s.byID {
		out.byID[k] = v
	}
	return out
}

func (s *placeSet) list() []domain.Place {
	out := make([]domain.Place, len(s.keys))
	for i, k := range s.keys {
		out[i] = s.byID[k].Clone()
	}
	return out
}

// normalizePlace drops read-side attribution and replaces nil slices so a
// stored place always round-trips through JSON unchanged.
func normalizePlace(p domain.Place) domain.Place {
	out := p.Clone()
	out.Contributor = nil
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.Comments == nil {
		out.Comments = []domain.Comment{}
	}
	if !out.CreatedAt.IsZero() {
		out.CreatedAt = out.CreatedAt.UTC()
	}
	return out
}

// ---- JSON file format --------------------------------------------------------

// fileRecord is the on-disk shape of one place. The id is the object key.
type fileRecord struct {
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Region        string        `json:"region"`
	Area          string        `json:"area,omitempty"`
	Era           string        `json:"era"`
	ContributorID string        `json:"contributor_id"`
	Image         string        `json:"image"`
	Story         string        `json:"story"`
	Tags          []string      `json:"tags"`
	Comments      []fileComment `json:"comments"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
}

type fileComment struct {
	User string `json:"user"`
	Text string `json:"text"`
}

func toFileRecord(p domain.Place) fileRecord {
	rec := fileRecord{
		Name:          p.Name,
		Type:          p.Type,
		Region:        p.Region,
		Area:          p.Area,
		Era:           p.Era,
		ContributorID: p.ContributorID,
		Image:         p.Image,
		Story:         p.Story,
		Tags:          p.Tags,
		Comments:      make([]fileComment, len(p.Comments)),
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	for i, c := range p.Comments {
		rec.Comments[i] = fileComment{User: c.User, Text: c.Text}
	}
	if !p.CreatedAt.IsZero() {
		ts := p.CreatedAt.UTC()
		rec.CreatedAt = &ts
	}
	return rec
}

func (rec fileRecord) toPlace(id string) domain.Place {
	p := domain.Place{
		ID:            id,
		Name:          rec.Name,
		Type:          rec.Type,
		Region:        rec.Region,
		Area:          rec.Area,
		Era:           rec.Era,
		ContributorID: rec.ContributorID,
		Image:         rec.Image,
		Story:         rec.Story,
		Tags:          rec.Tags,
		Comments:      make([]domain.Comment, len(rec.Comments)),
	}
	for i, c := range rec.Comments {
		p.Comments[i] = domain.Comment{User: c.User, Text: c.Text}
	}
	if rec.CreatedAt != nil {
		p.CreatedAt = rec.CreatedAt.UTC()
	}
	return p
}

// encodePlaces renders places as one JSON object with keys in slice order,
// indented by two spaces. Non-Latin text is written verbatim.
func encodePlaces(places []domain.Place) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, p := range places {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := encodeValue(&compact, p.ID); err != nil {
			return nil, err
		}
		compact.WriteByte(':')
		if err := encodeValue(&compact, toFileRecord(p)); err != nil {
			return nil, err
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

// decodePlaces parses a JSON object of id → record, keeping key order.
func decodePlaces(data []byte) ([]domain.Place, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	places := []domain.Place{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		var rec fileRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("record %q: %w", id, err)
		}
		places = append(places, rec.toPlace(id))
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the top-level object")
	}
	return places, nil
}
