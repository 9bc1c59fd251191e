package db

import (
	"context"
	"database/sql"
	"time"
)

const playerWithRankColumns = `p.id, p.name, p.rating, p.rank_id, p.created_at, p.updated_at,
       r.name, r.min_rating, r.created_at, r.updated_at`

const listPlayers = `-- name: ListPlayers :many
SELECT ` + playerWithRankColumns + `
FROM players p
LEFT JOIN ranks r ON r.id = p.rank_id
ORDER BY p.rating DESC, p.id ASC
`

func (q *Queries) ListPlayers(ctx context.Context) ([]PlayerWithRank, error) {
	rows, err := q.db.QueryContext(ctx, listPlayers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PlayerWithRank
	for rows.Next() {
		i, err := scanPlayerWithRank(rows)
		if err != nil {
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

const getPlayerByName = `-- name: GetPlayerByName :one
SELECT ` + playerWithRankColumns + `
FROM players p
LEFT JOIN ranks r ON r.id = p.rank_id
WHERE p.name = $1
`

func (q *Queries) GetPlayerByName(ctx context.Context, name string) (PlayerWithRank, error) {
	return scanPlayerWithRank(q.db.QueryRowContext(ctx, getPlayerByName, name))
}

const getPlayerByID = `-- name: GetPlayerByID :one
SELECT ` + playerWithRankColumns + `
FROM players p
LEFT JOIN ranks r ON r.id = p.rank_id
WHERE p.id = $1
`

func (q *Queries) GetPlayerByID(ctx context.Context, id int64) (PlayerWithRank, error) {
	return scanPlayerWithRank(q.db.QueryRowContext(ctx, getPlayerByID, id))
}

const createPlayer = `-- name: CreatePlayer :one
INSERT INTO players (name, rating, rank_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type CreatePlayerParams struct {
	Name      string
	Rating    int64
	RankID    sql.NullInt64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createPlayer,
		arg.Name,
		arg.Rating,
		arg.RankID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updatePlayer = `-- name: UpdatePlayer :execrows
UPDATE players
SET name = $1, rating = $2, rank_id = $3, updated_at = $4
WHERE id = $5
`

type UpdatePlayerParams struct {
	Name      string
	Rating    int64
	RankID    sql.NullInt64
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updatePlayer,
		arg.Name,
		arg.Rating,
		arg.RankID,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deletePlayerByID = `-- name: DeletePlayerByID :execrows
DELETE FROM players
WHERE id = $1
`

func (q *Queries) DeletePlayerByID(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePlayerByID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayerWithRank(row rowScanner) (PlayerWithRank, error) {
	var i PlayerWithRank
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Rating,
		&i.RankID,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.RankName,
		&i.RankMinRating,
		&i.RankCreatedAt,
		&i.RankUpdatedAt,
	)
	return i, err
}
