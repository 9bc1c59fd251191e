package main

import (
	"fmt"
	"io"
	"mmr-matchmaker/internal/rpc"
	"strconv"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
)

func newPlayersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List and edit players",
	}
	cmd.AddCommand(
		newPlayersListCmd(opts),
		newPlayersAddCmd(opts),
		newPlayersEditCmd(opts),
		newPlayersRmCmd(opts),
	)
	return cmd
}

func newPlayersListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players by rating, highest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := opts.client().ListPlayers.CallUnary(cmd.Context(), connect.NewRequest(&rpc.ListPlayersRequest{}))
			if err != nil {
				return err
			}
			printPlayers(cmd.OutOrStdout(), resp.Msg.Players)
			return nil
		},
	}
}

func newPlayersAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "add NAME RATING",
		Short:   "Add a player; the rank follows from the rating",
		Example: "  matchctl players add GrokAI 1200",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := parseRating(args[1])
			if err != nil {
				return err
			}
			resp, err := opts.client().CreatePlayer.CallUnary(cmd.Context(), connect.NewRequest(&rpc.CreatePlayerRequest{
				Name:   args[0],
				Rating: rating,
			}))
			if err != nil {
				return err
			}
			printPlayers(cmd.OutOrStdout(), []rpc.Player{resp.Msg.Player})
			return nil
		},
	}
}

func newPlayersEditCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "edit ID NAME RATING",
		Short:   "Rename a player or change their rating",
		Example: "  matchctl players edit 3 GrokAI 1350",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid player id %q: %w", args[0], err)
			}
			rating, err := parseRating(args[2])
			if err != nil {
				return err
			}
			resp, err := opts.client().UpdatePlayers.CallUnary(cmd.Context(), connect.NewRequest(&rpc.UpdatePlayersRequest{
				Players: []rpc.PlayerEdit{{ID: id, Name: args[1], Rating: rating}},
			}))
			if err != nil {
				return err
			}
			printPlayers(cmd.OutOrStdout(), resp.Msg.Players)
			return nil
		},
	}
}

func newPlayersRmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME...",
		Short: "Delete players by name, stopping at the first one that fails",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client().DeletePlayers.CallUnary(cmd.Context(), connect.NewRequest(&rpc.DeletePlayersRequest{Names: args}))
			if err != nil {
				return err
			}
			for _, name := range resp.Msg.Deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", name)
			}
			return nil
		},
	}
}

func parseRating(s string) (int, error) {
	rating, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q: %w", s, err)
	}
	return rating, nil
}

func printPlayers(w io.Writer, players []rpc.Player) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRATING\tRANK")
	for _, p := range players {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", p.ID, p.Name, p.Rating, p.Rank)
	}
	tw.Flush()
}
