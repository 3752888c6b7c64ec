// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/internal/platform/config"
	"github.com/taibuivan/openjam/internal/platform/constants"
	"github.com/taibuivan/openjam/internal/platform/httpclient"
)

// app carries the state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	apiURL string
	debug  bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	state := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Query and validate documents of the OpenJam content API",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.init(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&state.apiURL, "api-url", "", "content API base URL (default $OPENJAM_API_URL or http://localhost:1337)")
	root.PersistentFlags().BoolVar(&state.debug, "debug", false, "log requests to stderr")

	root.AddCommand(
		newCollectionsCommand(state),
		newQueryCommand(state),
		newListCommand(state),
		newGetCommand(state),
		newValidateCommand(state),
	)

	return root
}

// init loads the configuration and applies the global flags on top of it.
func (state *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = state.apiURL
	}
	if state.debug {
		cfg.Debug = true
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	state.logger = slog.New(slog.NewJSONHandler(state.errOut, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	state.cfg = cfg
	return nil
}

func (state *app) transport() *httpclient.Client {
	return httpclient.New(state.cfg.APIURL, state.cfg.HTTPTimeout, state.logger,
		httpclient.WithRateLimit(state.cfg.RateLimitRPS, state.cfg.RateLimitBurst))
}

func (state *app) printJSON(value any) error {
	encoder := json.NewEncoder(state.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// kindOf resolves a collection argument.
func kindOf(collection string) (entity.Kind, error) {
	kind, ok := entity.Lookup(collection)
	if !ok {
		return entity.Kind{}, fmt.Errorf("unknown collection %q (known: %s)", collection, strings.Join(entity.Collections(), ", "))
	}
	return kind, nil
}

func newCollectionsCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the known collections",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range entity.Collections() {
				fmt.Fprintln(state.out, name)
			}
			return nil
		},
	}
}
