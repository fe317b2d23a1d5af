package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/kbo-fan-service/internal/config"
	"github.com/preston-bernstein/kbo-fan-service/internal/logging"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
	"github.com/preston-bernstein/kbo-fan-service/internal/server"
)

const appVersion = "dev"

type app struct {
	configFile string
	team       string
	services   server.Services
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "kboctl",
		Short:        "Query KBO highlights, records and schedule",
		Version:      appVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file path (defaults to $CONFIG_FILE)")
	root.PersistentFlags().StringVarP(&a.team, "team", "t", "", "team code, e.g. LG or KIA")

	root.AddCommand(
		newHighlightsCmd(a),
		newRankingsCmd(a),
		newBattersCmd(a),
		newPitchersCmd(a),
		newHistoryCmd(a),
		newScheduleCmd(a),
		newTeamsCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	var (
		cfg config.Config
		err error
	)
	if a.configFile != "" {
		cfg, err = config.LoadFile(a.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		File:    cfg.Logging.File,
		Service: "kboctl",
		Version: appVersion,
		Output:  cmd.ErrOrStderr(),
	})
	a.services = server.BuildServices(cfg, logger, metrics.NewRecorder())
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
