// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/skillsproj/skills-reshape/internal/config"
	"github.com/skillsproj/skills-reshape/internal/csvio"
	"github.com/skillsproj/skills-reshape/internal/mapping"
	"github.com/skillsproj/skills-reshape/internal/survey"
	"github.com/skillsproj/skills-reshape/internal/tool"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		// Single exit path for every fatal error.
		slog.Error("run aborted", "error", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "skills-reshape",
		Short:         "Reshape a skills-survey CSV export into normalized reporting datasets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(runCmd(), serveCmd())
	return cmd
}

func runCmd() *cobra.Command {
	var configPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured reshape processes and write one CSV per process",
		RunE: func(*cobra.Command, []string) error {
			return run(configPath, outDir)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.json", "path to the run configuration file")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for output CSV files")
	return cmd
}

func run(configPath, outDir string) error {
	log := slog.Default()

	log.Info("parsing configuration file", "path", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded", "processes", cfg.Processes)

	var tm mapping.TeamMapping
	if cfg.NeedsMapping() {
		log.Info("loading team mapping", "path", cfg.Input.MappingFile, "team", cfg.Input.TeamName)
		teams, err := mapping.Load(cfg.Input.MappingFile)
		if err != nil {
			return err
		}
		tm, err = teams.Team(cfg.Input.TeamName)
		if err != nil {
			return err
		}
	}

	log.Info("reading input file", "path", cfg.Input.CSVFile)
	rows, err := csvio.ReadFile(cfg.Input.CSVFile)
	if err != nil {
		return err
	}

	reshapers := make([]survey.Reshaper, 0, len(cfg.Processes))
	for _, p := range cfg.Processes {
		r, err := survey.NewReshaper(p, tm)
		if err != nil {
			return err
		}
		reshapers = append(reshapers, r)
	}

	result, err := survey.NewPipeline(reshapers...).Run(rows)
	if err != nil {
		return err
	}

	for _, p := range cfg.Processes {
		table := result.Outputs[p]
		if table.Len() == 0 {
			log.Info("no records produced, skipping output", "process", p)
			continue
		}
		target := filepath.Join(outDir, csvio.OutputName(p, cfg.Input.TeamName))
		written, err := csvio.WriteVersioned(target, table)
		if errors.Is(err, csvio.ErrNoAvailableName) {
			log.Warn("unable to create output file", "process", p, "error", err)
			continue
		}
		if err != nil {
			return err
		}
		log.Info("output written", "process", p, "file", written, "records", table.Len())
	}
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reshape pipeline as an MCP tool over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(&mcp.Implementation{Name: "skills-reshape", Version: version}, nil)
			mcp.AddTool(server, tool.MetadataReshapeSurvey, tool.ReshapeSurvey)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
