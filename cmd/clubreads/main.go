package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/clubreads/clubreads/cmd/clubreads/serve"
	"github.com/clubreads/clubreads/pkg/config"
	logr "github.com/clubreads/clubreads/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	rootCmd = &cobra.Command{
		Use:          "clubreads",
		Short:        "A hosted book club coordination service",
		Long:         "ClubReads keeps book clubs moving: nominations, voting, meetings, discussion questions, and reminders.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.AddCommand(
		serve.Command,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
		} else {
			Version = "unknown (built from source)"
		}
	}
	rootCmd.Version = Version
}

func main() {
	ctx := context.Background()

	cfg := config.DefaultConfig()
	if cfg.Exist() {
		if err := cfg.ParseFile(); err != nil {
			log.Fatal("parse config file", "err", err)
		}
	}
	if err := cfg.ParseEnv(); err != nil {
		log.Fatal("parse environment variables", "err", err)
	}

	ctx = config.WithContext(ctx, cfg)

	logger, f, err := logr.NewLogger(cfg)
	if err != nil {
		log.Errorf("failed to create logger: %v", err)
	}
	if f != nil {
		defer f.Close() //nolint:errcheck
	}

	// Set global logger
	log.SetDefault(logger)

	// Set the max number of processes to the number of CPUs
	// This is useful when running in a container
	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.Warn("couldn't set automaxprocs", "error", err)
	}

	ctx = log.WithContext(ctx, logger)

	if rootCmd.ExecuteContext(ctx) != nil {
		os.Exit(1)
	}
}
