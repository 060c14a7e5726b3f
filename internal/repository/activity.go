package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/jackc/pgx/v5"
)

type ActivityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, e model.ActivityEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_activities (actor_id, actor_role, action, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ActorID, string(e.ActorRole), e.Action, e.Description, e.Timestamp)
	return err
}

// Recent returns the latest entries with the actor's display name.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT aa.id, aa.actor_id, aa.actor_role,
			COALESCE(CASE WHEN aa.actor_role = 'mitra' THEN m.nama_mitra ELSE au.nama END, ''),
			aa.action, aa.description, aa.created_at
		FROM admin_activities aa
		LEFT JOIN admin_users au ON aa.actor_role <> 'mitra' AND aa.actor_id = au.id
		LEFT JOIN mitra m ON aa.actor_role = 'mitra' AND aa.actor_id = m.id
		ORDER BY aa.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.Activity, error) {
		var (
			a    model.Activity
			role string
		)
		err := row.Scan(&a.ID, &a.ActorID, &role, &a.ActorName, &a.Action, &a.Description, &a.CreatedAt)
		a.ActorRole = model.Role(role)
		return a, err
	})
}
