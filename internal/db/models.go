package db

import (
	"database/sql"
	"time"
)

type Rank struct {
	ID        int64
	Name      string
	MinRating int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Player struct {
	ID        int64
	Name      string
	Rating    int64
	RankID    sql.NullInt64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerWithRank is a player row left-joined with its rank.
type PlayerWithRank struct {
	Player
	RankName      sql.NullString
	RankMinRating sql.NullInt64
	RankCreatedAt sql.NullTime
	RankUpdatedAt sql.NullTime
}
