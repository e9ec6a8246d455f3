package infra_postgres_media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanbelnik/kinomatch/core/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Driver reads the media catalog. The catalog is filled by a separate job.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type mediaDTO struct {
	ID         string         `db:"id"`
	Title      string         `db:"title"`
	PosterPath sql.NullString `db:"poster_path"`
}

func (m mediaDTO) toModel() model.Media {
	return model.Media{
		ID:         m.ID,
		Title:      m.Title,
		PosterPath: m.PosterPath.String,
	}
}

func (d *Driver) LoadByID(ctx context.Context, id model.MediaID) (model.Media, error) {
	const (
		q = `
		SELECT id, title, poster_path
		FROM media
		WHERE id = $1
		`
	)

	var row mediaDTO
	if err := d.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Media{}, fmt.Errorf("media %s: %w", id, model.ErrNotFound)
		}
		return model.Media{}, fmt.Errorf("failed to load media by ID %s: %w", id, err)
	}

	return row.toModel(), nil
}

// LoadByIDs returns the media found among ids, in the order of ids.
func (d *Driver) LoadByIDs(ctx context.Context, ids []model.MediaID) ([]model.Media, error) {
	if len(ids) == 0 {
		return []model.Media{}, nil
	}

	const (
		q = `
		SELECT id, title, poster_path
		FROM media
		WHERE id = ANY($1)
		`
	)

	var rows []mediaDTO
	if err := d.db.SelectContext(ctx, &rows, q, pq.StringArray(ids)); err != nil {
		return nil, fmt.Errorf("failed to load media by IDs: %w", err)
	}

	byID := make(map[model.MediaID]model.Media, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.toModel()
	}

	media := make([]model.Media, 0, len(rows))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			media = append(media, m)
		}
	}
	return media, nil
}
