// Command roverrun loads a terrain map, computes the movement cost of every
// cell from the base station, and displays the map or replays a rover mission
// on it.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roverrun/config"
	"github.com/katalvlaran/roverrun/internal/ctxlog"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the resolved configuration between cobra hooks and commands.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string
	cfg        config.Config
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:           "roverrun",
		Short:         "Terrain cost fields for a planetary rover",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to a YAML config file.")
	pf.StringVar(&a.logLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	pf.StringVar(&a.logFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	rootCmd.AddCommand(a.costsCmd())
	rootCmd.AddCommand(a.showCmd())
	rootCmd.AddCommand(a.driveCmd())

	return rootCmd
}

// setup loads the config file, applies flag overrides and installs the
// logger in the command context.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := ctxlog.New(a.errOut, a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		return err
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	logger.Debug("Configuration resolved.", "level", a.cfg.Log.Level, "format", a.cfg.Log.Format)

	return nil
}

func (a *app) costsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "costs [map-file]",
		Short: "Compute and print the cost of every cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCosts(cmd.Context(), args[0])
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [map-file]",
		Short: "Draw the map, optionally followed by its codes and costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var err error
			if f.Changed("colour") {
				if a.cfg.Render.Colour, err = f.GetBool("colour"); err != nil {
					return err
				}
			}
			if f.Changed("costs") {
				if a.cfg.Render.Costs, err = f.GetBool("costs"); err != nil {
					return err
				}
			}
			if f.Changed("codes") {
				if a.cfg.Render.Codes, err = f.GetBool("codes"); err != nil {
					return err
				}
			}
			return a.runShow(cmd.Context(), args[0])
		},
	}
	cmd.Flags().Bool("colour", false, "Colour the soil glyphs.")
	cmd.Flags().Bool("costs", true, "Print the cost table after the map.")
	cmd.Flags().Bool("codes", false, "Print the soil code table after the map.")
	return cmd
}

func (a *app) driveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drive [map-file] [mission-file]",
		Short: "Replay an HCL mission on the map and report the cost under the rover",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDrive(cmd.Context(), args[0], args[1])
		},
	}
}
