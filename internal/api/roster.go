// Package api talks to another matchmaker instance over its connect JSON
// endpoints.
package api

import (
	"context"
	"fmt"
	"mmr-matchmaker/internal/config"
	"mmr-matchmaker/internal/constants"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/rpc"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/valyala/fasthttp"
)

// RosterClient reads players and rank tiers from a remote instance. Any
// transport or decoding failure surfaces as a *domain.StoreError.
type RosterClient struct {
	baseURL string
	client  *fasthttp.Client
	logger  zerolog.Logger
}

func NewRosterClient(cfg *config.Config, logger zerolog.Logger) *RosterClient {
	return &RosterClient{
		baseURL: strings.TrimRight(cfg.RosterURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.RemoteRosterTimeout,
			WriteTimeout:        constants.RemoteRosterTimeout,
			MaxIdleConnDuration: constants.RemoteRosterIdle,
		},
		logger: logger,
	}
}

func (c *RosterClient) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	resp, err := doRequest[rpc.ListPlayersResponse](ctx, c, rpc.ListPlayersProcedure, rpc.ListPlayersRequest{})
	if err != nil {
		return nil, domain.NewStoreError("fetch remote players", err)
	}

	// Ranks are resolved again by the engine; only the label is kept here.
	return lo.Map(resp.Players, func(p rpc.Player, _ int) domain.Player {
		player := domain.Player{ID: p.ID, Name: p.Name, Rating: p.Rating}
		if p.Rank != "" && p.Rank != domain.UnrankedName {
			player.Rank = &domain.RankTier{Name: p.Rank}
		}
		return player
	}), nil
}

func (c *RosterClient) ListRanks(ctx context.Context) ([]domain.RankTier, error) {
	resp, err := doRequest[rpc.ListRanksResponse](ctx, c, rpc.ListRanksProcedure, rpc.ListRanksRequest{})
	if err != nil {
		return nil, domain.NewStoreError("fetch remote ranks", err)
	}

	return lo.Map(resp.Ranks, func(r rpc.Rank, _ int) domain.RankTier {
		return domain.RankTier{ID: r.ID, Name: r.Name, MinRating: r.MinRating}
	}), nil
}

// remoteError is the body connect writes for a failed unary call.
type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func doRequest[T any](ctx context.Context, c *RosterClient, procedure string, body any) (*T, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + procedure)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Connect-Protocol-Version", "1")
	req.SetBody(payload)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.DoTimeout(req, resp, constants.RemoteRosterTimeout); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		var remote remoteError
		if json.Unmarshal(resp.Body(), &remote) == nil && remote.Code != "" {
			return nil, fmt.Errorf("remote %s: %s", remote.Code, remote.Message)
		}
		return nil, fmt.Errorf("remote status %d", resp.StatusCode())
	}

	c.logger.Debug().Str("procedure", procedure).Int("bytes", len(resp.Body())).Msg("remote roster response")

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
