// Copyright 2025 go-tpop Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-tpop/internal/patterns"
	"github.com/ajroetker/go-tpop/sort"
)

// envPrefix prefixes the environment variables that mirror the flags.
const envPrefix = "SORTBENCH"

// referenceWarnCount is the array size above which the quadratic reference
// sort is worth a warning.
const referenceWarnCount = 50000

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "sortbench <count> <attempts>",
		Short: "Compare recursive, iterative and reference sorts",
		Long: "sortbench sorts <attempts> freshly generated arrays of <count> elements\n" +
			"for every selected input pattern and algorithm, then reports the total\n" +
			"and average time spent by each algorithm.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, v.GetBool("verbose"))
			cfg, err := buildConfig(v, args)
			if err != nil {
				_ = cmd.Usage()
				return err
			}
			return run(cmd, cfg, v.GetBool("sanity"), log)
		},
	}

	flags := cmd.Flags()
	flags.Uint64("seed", 0, "seed for input generation and pivot selection (default: "+sort.SeedEnvVar+" or the clock)")
	flags.StringSlice("algorithms", []string{"recursive", "iterative"}, "algorithms to run ("+strings.Join(algorithmNames(), ",")+") or 'all'")
	flags.String("patterns", "all", "input patterns to sort (random,sorted,reverse,homogeneous) or 'all'")
	flags.Bool("sanity", false, "sort and print small arrays of every pattern before timing")
	flags.String("env-file", "", "load SORTBENCH_* settings from this .env file")
	flags.BoolP("verbose", "v", false, "log every timed run")

	return cmd
}

// loadConfig wires flags, the optional .env file and SORTBENCH_* variables
// into v. Explicit flags win over the environment.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if file, _ := flags.GetString("env-file"); file != "" {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// buildConfig validates the positional arguments and the bound settings.
func buildConfig(v *viper.Viper, args []string) (benchConfig, error) {
	var cfg benchConfig

	count, err := strconv.Atoi(args[0])
	if err != nil || count < 0 {
		return cfg, fmt.Errorf("invalid count %q: want a non-negative integer", args[0])
	}
	attempts, err := strconv.Atoi(args[1])
	if err != nil || attempts < 1 {
		return cfg, fmt.Errorf("invalid attempts %q: want a positive integer", args[1])
	}

	algs, err := parseAlgorithms(v.GetStringSlice("algorithms"))
	if err != nil {
		return cfg, err
	}
	ps, err := patterns.Parse(v.GetString("patterns"))
	if err != nil {
		return cfg, err
	}

	seed := v.GetUint64("seed")
	if !v.IsSet("seed") {
		if envSeed, ok := sort.SeedEnv(); ok {
			seed = envSeed
		} else {
			seed = uint64(time.Now().UnixNano())
		}
	}

	cfg = benchConfig{
		count:      count,
		attempts:   attempts,
		seed:       seed,
		algorithms: algs,
		patterns:   ps,
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg benchConfig, sanity bool, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"goos":     runtime.GOOS,
		"goarch":   runtime.GOARCH,
		"features": strings.Join(cpuFeatures(), ","),
	}).Debug("platform")
	log.WithFields(logrus.Fields{
		"count":    cfg.count,
		"attempts": cfg.attempts,
		"seed":     cfg.seed,
	}).Info("preparing to start testing")

	for _, a := range cfg.algorithms {
		if a.name == "reference" && cfg.count > referenceWarnCount {
			log.WithField("count", cfg.count).Warn("reference sort is quadratic; this will take a while")
		}
	}

	out := cmd.OutOrStdout()
	if sanity {
		if err := writeSanity(out, cfg); err != nil {
			return err
		}
	}

	results, err := runBench(cfg, log)
	if err != nil {
		return err
	}
	log.Info("finished testing")
	return writeReport(out, cfg, results)
}
