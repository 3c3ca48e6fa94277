package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"lazydock/internal/app"
	"lazydock/internal/config"
	"lazydock/internal/docker"
	"lazydock/internal/logging"
)

// version is stamped by the release build.
var version = "dev"

const repoSlug = "lazydock/lazydock"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		host       string
		configPath string
		logLevel   string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:          "lazydock",
		Short:        "Terminal dashboard for a container runtime",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if host != "" {
				cfg.Host = host
			}

			closer, err := logging.Setup(logLevel, debug)
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}
			defer closer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			client, err := docker.New(ctx, cfg.Host)
			if err != nil {
				return fmt.Errorf("connect to daemon: %w", err)
			}
			defer client.Close()
			if err := client.Ping(ctx); err != nil {
				return err
			}
			slog.Info("connected", "host", client.ConnectionInfo().Host, "engine", client.ConnectionInfo().Version)

			p := tea.NewProgram(app.New(cfg, client), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "container runtime endpoint (overrides config and DOCKER_HOST)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose logging")

	cmd.AddCommand(versionCmd(), updateCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lazydock version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("lazydock", version)
		},
	}
}

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update lazydock to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			if version == "dev" {
				return fmt.Errorf("development builds cannot self-update")
			}
			repo := selfupdate.ParseSlug(repoSlug)
			release, err := selfupdate.UpdateSelf(cmd.Context(), version, repo)
			if err != nil {
				return fmt.Errorf("self-update: %w", err)
			}
			if release.Version() == version {
				fmt.Println("Already up to date")
				return nil
			}
			fmt.Printf("Updated to %s\n", release.Version())
			return nil
		},
	}
}
