// Package cli implements the hellomath command line.
package cli

import (
	"fmt"
	"os"

	"github.com/cyclopcam/logs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/hellomath"
	"github.com/arloliu/hellomath/dataset"
)

// Configuration keys, shared by flags and the optional config file.
const (
	keyConfig      = "config"
	keyData        = "data"
	keyNoIntercept = "no-intercept"
	keyVerbose     = "verbose"
)

var newLogger = func() (logs.Log, error) {
	return logs.NewLog()
}

// NewRootCmd builds the hellomath command.
//
// Without flags it analyzes the built-in demo dataset and prints the mean and
// standard deviation of x, the fitted regression line and its R².
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "hellomath",
		Short: "Descriptive statistics and simple linear regression",
		Long: `hellomath prints the mean and sample standard deviation of the x values,
followed by the least-squares line fitted to the (x, y) pairs and its R².

Without --data the built-in samples x = [1,2,3,4,5], y = [2,4.1,5.9,8.2,10.1]
are used. Data files hold one "x,y" pair per row and may be compressed
(.zst, .s2, .lz4).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String(keyConfig, "", "config file (yaml, json or toml) with data, no-intercept and verbose keys")
	flags.StringP(keyData, "d", "", "CSV file of x,y pairs, optionally compressed")
	flags.Bool(keyNoIntercept, false, "fit the regression line through the origin")
	flags.BoolP(keyVerbose, "v", false, "log dataset details")

	return cmd
}

// Execute runs the hellomath command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	// NewLog announces itself on stdout; only verbose runs get a logger.
	var logger logs.Log
	if v.GetBool(keyVerbose) {
		var err error
		if logger, err = newLogger(); err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Close()
	}

	ds := dataset.Default()
	if path := v.GetString(keyData); path != "" {
		var err error
		if ds, err = dataset.Load(path); err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		if logger != nil {
			logger.Infof("Loaded %v pairs from '%v'", ds.Len(), path)
		}
	}
	if logger != nil {
		logger.Infof("Dataset fingerprint %016x", ds.Fingerprint())
	}

	report, err := hellomath.Run(ds.X, ds.Y, hellomath.WithIntercept(!v.GetBool(keyNoIntercept)))
	if err != nil {
		if logger != nil {
			logger.Errorf("Analysis of %v pairs failed: %v", ds.Len(), err)
		}
		return err
	}

	_, err = report.WriteTo(cmd.OutOrStdout())

	return err
}
