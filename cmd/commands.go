package main

import (
	"github.com/SystemBuilders/strlist/internal/listclient"
	"github.com/SystemBuilders/strlist/internal/listservice"
	"github.com/SystemBuilders/strlist/internal/node"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(log zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "strlist",
		Short:         "An in-memory doubly-linked list of strings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newDemoCmd(log), newServeCmd(log), newRemoteCmd())
	return root
}

func newDemoCmd(log zerolog.Logger) *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the insert, find, delete and free walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log = log.Level(zerolog.DebugLevel)
			}
			return runDemo(cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "log every list operation")
	return cmd
}

func newServeCmd(log zerolog.Logger) *cobra.Command {
	scfg := listservice.NewSimpleConfig("127.0.0.1", "1234", 0)
	var debug bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve lists over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log = log.Level(zerolog.DebugLevel)
			}
			ls := listservice.NewSimpleListService(log, scfg.MaxNodes)
			return node.Start(ls, scfg, log)
		},
	}
	cmd.Flags().StringVar(&scfg.IPAddr, "ip", scfg.IPAddr, "address to listen on")
	cmd.Flags().StringVar(&scfg.PortAddr, "port", scfg.PortAddr, "port to listen on")
	cmd.Flags().IntVar(&scfg.MaxNodes, "max-nodes", scfg.MaxNodes, "cap on nodes per list, 0 for none")
	cmd.Flags().BoolVar(&debug, "debug", false, "log every list operation")
	return cmd
}

func newRemoteCmd() *cobra.Command {
	scfg := listclient.NewSimpleConfig("http://127.0.0.1", "1234")
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Run the walkthrough against a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemote(cmd.OutOrStdout(), listclient.NewSimpleClient(scfg))
		},
	}
	cmd.Flags().StringVar(&scfg.IPAddr, "ip", scfg.IPAddr, "server address, including the scheme")
	cmd.Flags().StringVar(&scfg.PortAddr, "port", scfg.PortAddr, "server port")
	return cmd
}
