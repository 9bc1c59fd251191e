package main

import (
	"fmt"
	"io"
	"mmr-matchmaker/internal/matchmaking"
	"mmr-matchmaker/internal/rpc"
	"strings"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
)

func newMatchCmd(opts *options) *cobra.Command {
	var (
		rangeFlag string
		teamSize  int
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Pick players in a rating range and split them into two balanced teams",
		Example: `  matchctl match
  matchctl match --range mid --team-size 3
  matchctl match --range between:800-1500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := opts.client().FindMatch.CallUnary(cmd.Context(), connect.NewRequest(&rpc.FindMatchRequest{
				Range:    rangeFlag,
				TeamSize: teamSize,
			}))
			if err != nil {
				return err
			}
			printMatch(cmd.OutOrStdout(), resp.Msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&rangeFlag, "range", "all", "all, low, mid, high, lt:N, gt:N or between:LO-HI")
	cmd.Flags().IntVar(&teamSize, "team-size", 0, "players per team (0 uses the server default)")
	return cmd
}

func printMatch(w io.Writer, m *rpc.FindMatchResponse) {
	fmt.Fprintf(w, "match %s  range=%s  team size=%d\n", m.MatchID, m.Range, m.TeamSize)
	for _, a := range m.Advisories {
		if a == string(matchmaking.AdvisoryInsufficientPool) {
			fmt.Fprintf(w, "warning: only %d players available, wanted %d; using all of them\n", m.Available, m.Requested)
			continue
		}
		fmt.Fprintf(w, "warning: %s\n", a)
	}

	for _, team := range []rpc.Team{m.TeamA, m.TeamB} {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s  total=%d  average=%s\n", team.Name, team.Total, formatAverage(team.Average))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  NAME\tRATING\tRANK")
		for _, p := range team.Players {
			fmt.Fprintf(tw, "  %s\t%d\t%s\n", p.Name, p.Rating, p.Rank)
		}
		tw.Flush()
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "rating gap: %d\n", m.Gap)
}

func formatAverage(avg *float64) string {
	if avg == nil {
		return "-"
	}
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", *avg), "0"), ".")
}
