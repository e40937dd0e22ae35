package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/unicsmcr/healthcare_api/routers"
	"github.com/unicsmcr/healthcare_api/server"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "healthcare_api",
		Short:        "Serves the Healthcare Database API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.AddCommand(newRoutesCommand())
	return cmd
}

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Loads the route table and prints which routes could be mounted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.InitializeServer(server.Persistent)
			if err != nil {
				return errors.Wrap(err, "could not create server")
			}
			defer srv.Logger().Sync() // nolint:errcheck

			report := srv.Report()
			err = printReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			return report.Err()
		},
	}
}

func serve(ctx context.Context) error {
	srv, err := server.InitializeServer(server.Persistent)
	if err != nil {
		return errors.Wrap(err, "could not create server")
	}
	logger := srv.Logger()
	defer logger.Sync() // nolint:errcheck

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = srv.Run(ctx)
	if err != nil {
		logger.Error("server exited with error", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}

func printReport(w io.Writer, report *routers.StartupReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MOUNT\tPATH\tSTATUS")
	for _, result := range report.Results {
		status := "loaded"
		if result.Err != nil {
			status = "failed: " + result.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", result.MountName, result.Path, status)
	}
	fmt.Fprintf(tw, "\n%d loaded, %d failed\n", len(report.Loaded()), len(report.Failed()))
	return tw.Flush()
}
