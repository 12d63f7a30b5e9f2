// Package cmd implements the dggs command line: cell inspection, moves,
// iteration and a per-pentagon census of the grid.
package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/tessellation"
)

const (
	keyMaxResolution = "max-resolution"
	keyOutput        = "output"
	envPrefix        = "DGGS"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
}

var rootOpt rootOpts

var longRootCmdDescription = `dggs inspects the aperture-3 icosahedral grid: parse cell indices,
step between neighbours, zoom across resolutions and enumerate subtrees.

Settings are read from flags, then DGGS_* environment variables, then the
config file (default $HOME/.dggs.yaml).
`

// NewRootCmd builds the command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dggs",
		Short:         "Inspect and enumerate cells of an icosahedral grid",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&rootOpt.cfgFile, "config", "", "config file (default is $HOME/.dggs.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug logging")
	rootCmd.PersistentFlags().Int(keyMaxResolution, digits.MaxResolution, "deepest resolution the tables are built for")
	rootCmd.PersistentFlags().StringP(keyOutput, "o", formatTable, "output format: table or yaml")

	rootCmd.AddCommand(
		NewInspectCmd(),
		NewMoveCmd(),
		NewNeighboursCmd(),
		NewChildrenCmd(),
		NewCoveringCmd(),
		NewIterateCmd(),
		NewCensusCmd(),
		NewPolarCmd(),
		NewDistanceCmd(),
		NewRegionCmd(),
	)
	rootCmd.DisableAutoGenTag = true

	return rootCmd
}

// Execute runs the command line against stdout.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		logrus.Errorf("dggs: %v", err)
		os.Exit(1)
	}
}

// initConfig binds flags and DGGS_* variables and reads the config file if
// one exists.
func initConfig(cmd *cobra.Command) error {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if rootOpt.debugModeOn {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}
	if rootOpt.cfgFile != "" {
		viper.SetConfigFile(rootOpt.cfgFile)
	} else {
		viper.SetConfigName(".dggs")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing || rootOpt.cfgFile != "" {
			return errors.Wrap(err, "failed to read config")
		}
	} else {
		logrus.Debugf("using config file %s", viper.ConfigFileUsed())
	}

	return nil
}

// newEngine builds tables for the configured resolution. The returned
// teardown must run once the command is done with the engine.
func newEngine() (*gridmath.Engine, func(), error) {
	maxRes := viper.GetInt(keyMaxResolution)
	t, err := tessellation.Initialize(tessellation.WithMaxResolution(maxRes))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to build tables for resolution %d", maxRes)
	}
	e, err := gridmath.New(t)
	if err != nil {
		t.Teardown()

		return nil, nil, err
	}
	logrus.Debugf("tables ready up to resolution %d", maxRes)

	return e, t.Teardown, nil
}
