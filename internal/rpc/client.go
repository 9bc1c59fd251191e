package rpc

import (
	"strings"

	"connectrpc.com/connect"
)

type Client struct {
	FindMatch     *connect.Client[FindMatchRequest, FindMatchResponse]
	ListPlayers   *connect.Client[ListPlayersRequest, ListPlayersResponse]
	CreatePlayer  *connect.Client[CreatePlayerRequest, CreatePlayerResponse]
	UpdatePlayers *connect.Client[UpdatePlayersRequest, UpdatePlayersResponse]
	DeletePlayers *connect.Client[DeletePlayersRequest, DeletePlayersResponse]
	ListRanks     *connect.Client[ListRanksRequest, ListRanksResponse]
	CreateRank    *connect.Client[CreateRankRequest, CreateRankResponse]
	DeleteRanks   *connect.Client[DeleteRanksRequest, DeleteRanksResponse]
}

func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithCodec()}, opts...)

	return &Client{
		FindMatch:     connect.NewClient[FindMatchRequest, FindMatchResponse](httpClient, baseURL+FindMatchProcedure, opts...),
		ListPlayers:   connect.NewClient[ListPlayersRequest, ListPlayersResponse](httpClient, baseURL+ListPlayersProcedure, opts...),
		CreatePlayer:  connect.NewClient[CreatePlayerRequest, CreatePlayerResponse](httpClient, baseURL+CreatePlayerProcedure, opts...),
		UpdatePlayers: connect.NewClient[UpdatePlayersRequest, UpdatePlayersResponse](httpClient, baseURL+UpdatePlayersProcedure, opts...),
		DeletePlayers: connect.NewClient[DeletePlayersRequest, DeletePlayersResponse](httpClient, baseURL+DeletePlayersProcedure, opts...),
		ListRanks:     connect.NewClient[ListRanksRequest, ListRanksResponse](httpClient, baseURL+ListRanksProcedure, opts...),
		CreateRank:    connect.NewClient[CreateRankRequest, CreateRankResponse](httpClient, baseURL+CreateRankProcedure, opts...),
		DeleteRanks:   connect.NewClient[DeleteRanksRequest, DeleteRanksResponse](httpClient, baseURL+DeleteRanksProcedure, opts...),
	}
}
