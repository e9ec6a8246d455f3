package infra_postgres_room

import (
	"context"
	"time"

	"github.com/humanbelnik/kinomatch/core/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Driver keeps the durable record of rooms. The ephemeral state lives in Redis.
type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	Code      string    `db:"code"`
	HostID    string    `db:"host_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// Create records a new session. A reused invite code restarts the row, and
// created_at marks where the new session begins.
func (d *Driver) Create(ctx context.Context, room model.Room) error {
	dto := roomDTO{
		Code:      room.ID,
		HostID:    room.HostID,
		Status:    string(room.Status),
		CreatedAt: room.CreatedAt,
	}

	query := `
		INSERT INTO rooms (code, host_id, status, created_at)
		VALUES (:code, :host_id, :status, :created_at)
		ON CONFLICT (code) DO UPDATE
		SET host_id = EXCLUDED.host_id,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

// SetStatus mirrors a status change. Terminal statuses are never overwritten.
func (d *Driver) SetStatus(ctx context.Context, roomID model.RoomID, status model.Status) error {
	query := `
		UPDATE rooms
		SET status = $1
		WHERE code = $2 AND NOT (status = ANY($3))
	`

	terminal := pq.StringArray{string(model.StatusMatched), string(model.StatusCancelled)}
	_, err := d.db.ExecContext(ctx, query, string(status), roomID, terminal)
	return err
}
