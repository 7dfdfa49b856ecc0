package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/stash"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ stash.SaveService = (*SaveService)(nil)

// SaveService implements stash.SaveService using SQLite.
type SaveService struct {
	db *DB
}

// NewSaveService creates a new SaveService.
func NewSaveService(db *DB) *SaveService {
	return &SaveService{db: db}
}

const saveColumns = `id, user_id, url, title, excerpt, content, highlight, image_url,
	site_name, author, published_at, source, content_hash, created_at`

// execer is satisfied by both *DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateSave creates a new save with a generated ID and timestamp.
func (s *SaveService) CreateSave(ctx context.Context, save *stash.Save) error {
	st, err := insertSave(ctx, s.db, save)
	if err != nil {
		return err
	}
	st.apply(save)
	return nil
}

// CreateSaves inserts saves in batches of stash.SaveBatchSize, one
// transaction per batch. A failing batch is rolled back and reported as a
// *stash.BatchError; batches before it stay committed.
func (s *SaveService) CreateSaves(ctx context.Context, saves []*stash.Save) (int, error) {
	inserted := 0
	committed := 0
	for start := 0; start < len(saves); start += stash.SaveBatchSize {
		end := min(start+stash.SaveBatchSize, len(saves))
		if err := s.createBatch(ctx, saves[start:end]); err != nil {
			return inserted, &stash.BatchError{Committed: committed, Inserted: inserted, Err: err}
		}
		committed++
		inserted += end - start
	}
	return inserted, nil
}

func (s *SaveService) createBatch(ctx context.Context, batch []*stash.Save) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stamps := make([]stamp, len(batch))
	for i, save := range batch {
		if stamps[i], err = insertSave(ctx, tx, save); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	for i, save := range batch {
		stamps[i].apply(save)
	}
	return nil
}

// stamp holds the generated fields of an inserted save. They are copied
// onto the caller's save only once the row is durable.
type stamp struct {
	id          string
	createdAt   time.Time
	contentHash string
}

func (st stamp) apply(save *stash.Save) {
	save.ID = st.id
	save.CreatedAt = st.createdAt
	save.ContentHash = st.contentHash
}

func insertSave(ctx context.Context, db execer, save *stash.Save) (stamp, error) {
	if err := save.Validate(); err != nil {
		return stamp{}, err
	}

	st := stamp{
		id:          uuid.New().String(),
		createdAt:   time.Now().UTC(),
		contentHash: hashContent(save.Content + save.Highlight),
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO saves (`+saveColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, st.id, save.UserID, save.URL, save.Title, save.Excerpt, save.Content, save.Highlight,
		save.ImageURL, save.SiteName, save.Author, save.PublishedAt, save.Source, st.contentHash,
		st.createdAt.Format(timeLayout))
	if err != nil {
		return stamp{}, err
	}
	return st, nil
}

// FindSaveByID retrieves a save by ID.
func (s *SaveService) FindSaveByID(ctx context.Context, id string) (*stash.Save, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+saveColumns+` FROM saves WHERE id = ?`, id)
	save, err := scanSave(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, stash.Errorf(stash.ENOTFOUND, "save not found")
	}
	if err != nil {
		return nil, err
	}
	return save, nil
}

// FindSaves retrieves saves matching the filter, newest first.
func (s *SaveService) FindSaves(ctx context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + saveColumns + ` FROM saves WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.UserID != nil {
		query.WriteString(" AND user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.HasHighlight != nil {
		if *filter.HasHighlight {
			query.WriteString(" AND highlight != ''")
		} else {
			query.WriteString(" AND highlight = ''")
		}
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saves []*stash.Save
	for rows.Next() {
		save, err := scanSave(rows)
		if err != nil {
			return nil, err
		}
		saves = append(saves, save)
	}
	return saves, rows.Err()
}

// DeleteSave permanently removes a save.
func (s *SaveService) DeleteSave(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM saves WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stash.Errorf(stash.ENOTFOUND, "save not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSave(row scanner) (*stash.Save, error) {
	var save stash.Save
	var createdAt string
	if err := row.Scan(&save.ID, &save.UserID, &save.URL, &save.Title, &save.Excerpt,
		&save.Content, &save.Highlight, &save.ImageURL, &save.SiteName, &save.Author,
		&save.PublishedAt, &save.Source, &save.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	save.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &save, nil
}
