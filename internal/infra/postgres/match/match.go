package infra_postgres_match

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type matchDTO struct {
	ID        uuid.UUID `db:"id"`
	RoomCode  string    `db:"room_code"`
	MediaID   string    `db:"media_id"`
	MatchedAt time.Time `db:"matched_at"`
}

// SaveMatch stores the match and marks the room MATCHED in one transaction.
func (d *Driver) SaveMatch(ctx context.Context, roomID model.RoomID, mediaID model.MediaID, matchedAt time.Time) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	insertMatchQuery := `
		INSERT INTO matches (id, room_code, media_id, matched_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, insertMatchQuery, uuid.New(), roomID, mediaID, matchedAt); err != nil {
		return err
	}

	updateRoomQuery := `
		INSERT INTO rooms (code, status, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET status = EXCLUDED.status
	`
	if _, err := tx.ExecContext(ctx, updateRoomQuery, roomID, string(model.StatusMatched), matchedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// MatchByRoom returns the match of the current session of the room.
// Invite codes are reused, so matches older than the room row are skipped.
func (d *Driver) MatchByRoom(ctx context.Context, roomID model.RoomID) (model.MediaID, time.Time, error) {
	var dto matchDTO

	query := `
		SELECT m.id, m.room_code, m.media_id, m.matched_at
		FROM matches m
		JOIN rooms r ON r.code = m.room_code
		WHERE m.room_code = $1 AND m.matched_at >= r.created_at
		ORDER BY m.matched_at DESC
		LIMIT 1
	`

	err := d.db.GetContext(ctx, &dto, query, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", time.Time{}, model.ErrNotFound
		}
		return "", time.Time{}, err
	}

	return dto.MediaID, dto.MatchedAt, nil
}
