package db

import (
	"context"
	"time"
)

const listRanks = `-- name: ListRanks :many
SELECT id, name, min_rating, created_at, updated_at
FROM ranks
ORDER BY min_rating ASC, id ASC
`

func (q *Queries) ListRanks(ctx context.Context) ([]Rank, error) {
	rows, err := q.db.QueryContext(ctx, listRanks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rank
	for rows.Next() {
		var i Rank
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.MinRating,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getRankByName = `-- name: GetRankByName :one
SELECT id, name, min_rating, created_at, updated_at
FROM ranks
WHERE name = $1
`

func (q *Queries) GetRankByName(ctx context.Context, name string) (Rank, error) {
	row := q.db.QueryRowContext(ctx, getRankByName, name)
	var i Rank
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.MinRating,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createRank = `-- name: CreateRank :one
INSERT INTO ranks (name, min_rating, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, min_rating, created_at, updated_at
`

type CreateRankParams struct {
	Name      string
	MinRating int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateRank(ctx context.Context, arg CreateRankParams) (Rank, error) {
	row := q.db.QueryRowContext(ctx, createRank,
		arg.Name,
		arg.MinRating,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Rank
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.MinRating,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteRankByName = `-- name: DeleteRankByName :execrows
DELETE FROM ranks
WHERE name = $1
`

func (q *Queries) DeleteRankByName(ctx context.Context, name string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteRankByName, name)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
