package main

import (
	"mmr-matchmaker/internal/rpc"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

type options struct {
	server  string
	timeout time.Duration
}

func (o *options) client() *rpc.Client {
	return rpc.NewClient(&http.Client{Timeout: o.timeout}, o.server)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	server := os.Getenv("MATCHCTL_SERVER")
	if server == "" {
		server = defaultServer
	}

	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Balance teams and manage the player roster of a matchmaker server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", server, "matchmaker base URL (env MATCHCTL_SERVER)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(
		newMatchCmd(opts),
		newPlayersCmd(opts),
		newRanksCmd(opts),
	)
	return root
}
