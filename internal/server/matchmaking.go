package server

import (
	"context"
	"errors"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/matchmaking"
	"mmr-matchmaker/internal/rpc"
	"mmr-matchmaker/internal/service"
	"net/http"

	"connectrpc.com/connect"
	"github.com/samber/lo"
)

type MatchmakingServer struct {
	matchSvc  *service.MatchService
	playerSvc *service.PlayerService
	rankSvc   *service.RankService
}

func NewMatchmakingServer(matchSvc *service.MatchService, playerSvc *service.PlayerService, rankSvc *service.RankService) *MatchmakingServer {
	return &MatchmakingServer{matchSvc: matchSvc, playerSvc: playerSvc, rankSvc: rankSvc}
}

// Handler mounts every procedure of the service and returns the path prefix
// to register it under.
func (s *MatchmakingServer) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{rpc.WithCodec()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(rpc.FindMatchProcedure, connect.NewUnaryHandler(rpc.FindMatchProcedure, s.FindMatch, opts...))
	mux.Handle(rpc.ListPlayersProcedure, connect.NewUnaryHandler(rpc.ListPlayersProcedure, s.ListPlayers, opts...))
	mux.Handle(rpc.CreatePlayerProcedure, connect.NewUnaryHandler(rpc.CreatePlayerProcedure, s.CreatePlayer, opts...))
	mux.Handle(rpc.UpdatePlayersProcedure, connect.NewUnaryHandler(rpc.UpdatePlayersProcedure, s.UpdatePlayers, opts...))
	mux.Handle(rpc.DeletePlayersProcedure, connect.NewUnaryHandler(rpc.DeletePlayersProcedure, s.DeletePlayers, opts...))
	mux.Handle(rpc.ListRanksProcedure, connect.NewUnaryHandler(rpc.ListRanksProcedure, s.ListRanks, opts...))
	mux.Handle(rpc.CreateRankProcedure, connect.NewUnaryHandler(rpc.CreateRankProcedure, s.CreateRank, opts...))
	mux.Handle(rpc.DeleteRanksProcedure, connect.NewUnaryHandler(rpc.DeleteRanksProcedure, s.DeleteRanks, opts...))
	return rpc.ServicePath, mux
}

func (s *MatchmakingServer) FindMatch(ctx context.Context, req *connect.Request[rpc.FindMatchRequest]) (*connect.Response[rpc.FindMatchResponse], error) {
	criterion, err := matchmaking.ParseRange(req.Msg.Range)
	if err != nil {
		return nil, toConnectError(err)
	}

	match, err := s.matchSvc.FindMatch(ctx, criterion, req.Msg.TeamSize)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&rpc.FindMatchResponse{
		MatchID:    match.ID,
		Range:      match.Criterion.String(),
		TeamSize:   match.TeamSize,
		Requested:  match.Requested,
		Available:  match.Available,
		Advisories: lo.Map(match.Advisories, func(a matchmaking.Advisory, _ int) string { return string(a) }),
		TeamA:      toTeam(match.Report.A),
		TeamB:      toTeam(match.Report.B),
		Gap:        match.Report.Gap,
	}), nil
}

func (s *MatchmakingServer) ListPlayers(ctx context.Context, _ *connect.Request[rpc.ListPlayersRequest]) (*connect.Response[rpc.ListPlayersResponse], error) {
	players, err := s.playerSvc.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.ListPlayersResponse{Players: toPlayers(players)}), nil
}

func (s *MatchmakingServer) CreatePlayer(ctx context.Context, req *connect.Request[rpc.CreatePlayerRequest]) (*connect.Response[rpc.CreatePlayerResponse], error) {
	player, err := s.playerSvc.Create(ctx, req.Msg.Name, req.Msg.Rating)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.CreatePlayerResponse{Player: toPlayer(*player)}), nil
}

func (s *MatchmakingServer) UpdatePlayers(ctx context.Context, req *connect.Request[rpc.UpdatePlayersRequest]) (*connect.Response[rpc.UpdatePlayersResponse], error) {
	edits := lo.Map(req.Msg.Players, func(e rpc.PlayerEdit, _ int) domain.PlayerEdit {
		return domain.PlayerEdit{ID: e.ID, Name: e.Name, Rating: e.Rating}
	})

	updated, err := s.playerSvc.Update(ctx, edits)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdatePlayersResponse{Players: toPlayers(updated)}), nil
}

func (s *MatchmakingServer) DeletePlayers(ctx context.Context, req *connect.Request[rpc.DeletePlayersRequest]) (*connect.Response[rpc.DeletePlayersResponse], error) {
	deleted, err := s.playerSvc.DeleteByNames(ctx, req.Msg.Names)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.DeletePlayersResponse{
		Deleted: lo.Map(deleted, func(p domain.Player, _ int) string { return p.Name }),
	}), nil
}

func (s *MatchmakingServer) ListRanks(ctx context.Context, _ *connect.Request[rpc.ListRanksRequest]) (*connect.Response[rpc.ListRanksResponse], error) {
	ranks, err := s.rankSvc.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.ListRanksResponse{
		Ranks: lo.Map(ranks, func(r domain.RankTier, _ int) rpc.Rank { return toRank(r) }),
	}), nil
}

func (s *MatchmakingServer) CreateRank(ctx context.Context, req *connect.Request[rpc.CreateRankRequest]) (*connect.Response[rpc.CreateRankResponse], error) {
	rank, err := s.rankSvc.Create(ctx, req.Msg.Name, req.Msg.MinRating)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.CreateRankResponse{Rank: toRank(*rank)}), nil
}

func (s *MatchmakingServer) DeleteRanks(ctx context.Context, req *connect.Request[rpc.DeleteRanksRequest]) (*connect.Response[rpc.DeleteRanksResponse], error) {
	if err := s.rankSvc.DeleteByNames(ctx, req.Msg.Names); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.DeleteRanksResponse{Deleted: req.Msg.Names}), nil
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTeamSize),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrEmptySelection):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, domain.ErrPlayerNotFound), errors.Is(err, domain.ErrRankNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, domain.ErrDuplicateName), errors.Is(err, domain.ErrDuplicateThreshold):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, domain.ErrEmptyPool), errors.Is(err, domain.ErrDataIntegrity):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toPlayer(p domain.Player) rpc.Player {
	return rpc.Player{ID: p.ID, Name: p.Name, Rating: p.Rating, Rank: p.RankName()}
}

func toPlayers(players []domain.Player) []rpc.Player {
	return lo.Map(players, func(p domain.Player, _ int) rpc.Player { return toPlayer(p) })
}

func toRank(r domain.RankTier) rpc.Rank {
	return rpc.Rank{ID: r.ID, Name: r.Name, MinRating: r.MinRating}
}

func toTeam(t matchmaking.TeamStats) rpc.Team {
	return rpc.Team{
		Name:    t.Name,
		Players: toPlayers(t.Players),
		Total:   t.Total,
		Size:    t.Size,
		Average: t.Average,
	}
}
