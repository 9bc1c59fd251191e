// Package rpc holds the wire messages and procedure names of the matchmaking
// service. Messages travel as JSON over connect.
package rpc

const ServiceName = "mmr.v1.MatchmakingService"

const ServicePath = "/" + ServiceName + "/"

const (
	FindMatchProcedure     = ServicePath + "FindMatch"
	ListPlayersProcedure   = ServicePath + "ListPlayers"
	CreatePlayerProcedure  = ServicePath + "CreatePlayer"
	UpdatePlayersProcedure = ServicePath + "UpdatePlayers"
	DeletePlayersProcedure = ServicePath + "DeletePlayers"
	ListRanksProcedure     = ServicePath + "ListRanks"
	CreateRankProcedure    = ServicePath + "CreateRank"
	DeleteRanksProcedure   = ServicePath + "DeleteRanks"
)

type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Rank   string `json:"rank"`
}

type Rank struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	MinRating int    `json:"min_rating"`
}

type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
	Total   int      `json:"total"`
	Size    int      `json:"size"`
	// null when the team is empty
	Average *float64 `json:"average"`
}

type FindMatchRequest struct {
	// all, low, mid, high, lt:N, gt:N or between:LO-HI
	Range    string `json:"range"`
	TeamSize int    `json:"team_size"`
}

type FindMatchResponse struct {
	MatchID    string   `json:"match_id"`
	Range      string   `json:"range"`
	TeamSize   int      `json:"team_size"`
	Requested  int      `json:"requested"`
	Available  int      `json:"available"`
	Advisories []string `json:"advisories"`
	TeamA      Team     `json:"team_a"`
	TeamB      Team     `json:"team_b"`
	Gap        int      `json:"gap"`
}

type ListPlayersRequest struct{}

type ListPlayersResponse struct {
	Players []Player `json:"players"`
}

type CreatePlayerRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type CreatePlayerResponse struct {
	Player Player `json:"player"`
}

type PlayerEdit struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type UpdatePlayersRequest struct {
	Players []PlayerEdit `json:"players"`
}

type UpdatePlayersResponse struct {
	Players []Player `json:"players"`
}

type DeletePlayersRequest struct {
	Names []string `json:"names"`
}

type DeletePlayersResponse struct {
	Deleted []string `json:"deleted"`
}

type ListRanksRequest struct{}

type ListRanksResponse struct {
	Ranks []Rank `json:"ranks"`
}

type CreateRankRequest struct {
	Name      string `json:"name"`
	MinRating int    `json:"min_rating"`
}

type CreateRankResponse struct {
	Rank Rank `json:"rank"`
}

type DeleteRanksRequest struct {
	Names []string `json:"names"`
}

type DeleteRanksResponse struct {
	Deleted []string `json:"deleted"`
}
