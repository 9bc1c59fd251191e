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

func newRanksCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "List and edit rank tiers",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List rank tiers by threshold",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				resp, err := opts.client().ListRanks.CallUnary(cmd.Context(), connect.NewRequest(&rpc.ListRanksRequest{}))
				if err != nil {
					return err
				}
				printRanks(cmd.OutOrStdout(), resp.Msg.Ranks)
				return nil
			},
		},
		&cobra.Command{
			Use:     "add NAME MIN_RATING",
			Short:   "Add a rank tier",
			Example: "  matchctl ranks add Gold 1500",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				minRating, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid min rating %q: %w", args[1], err)
				}
				resp, err := opts.client().CreateRank.CallUnary(cmd.Context(), connect.NewRequest(&rpc.CreateRankRequest{
					Name:      args[0],
					MinRating: minRating,
				}))
				if err != nil {
					return err
				}
				printRanks(cmd.OutOrStdout(), []rpc.Rank{resp.Msg.Rank})
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm NAME...",
			Short: "Delete rank tiers; their players become unranked",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := opts.client().DeleteRanks.CallUnary(cmd.Context(), connect.NewRequest(&rpc.DeleteRanksRequest{Names: args}))
				if err != nil {
					return err
				}
				for _, name := range resp.Msg.Deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", name)
				}
				return nil
			},
		},
	)
	return cmd
}

func printRanks(w io.Writer, ranks []rpc.Rank) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMIN RATING")
	for _, r := range ranks {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", r.ID, r.Name, r.MinRating)
	}
	tw.Flush()
}
