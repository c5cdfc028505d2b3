package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/vital-tools/go-vital/env"
	"github.com/vital-tools/go-vital/logger"
	"github.com/vital-tools/go-vital/memo"
	vstring "github.com/vital-tools/go-vital/string"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "vital",
		Short:        "Memoization and string helpers",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format (console or json)")
	root.AddCommand(newMemoCommand(), newCaseCommand())
	return root
}

// slowTransform stands in for an expensive computation.
func slowTransform(delay time.Duration) func(string) (string, error) {
	return func(input string) (string, error) {
		if strings.TrimSpace(input) == "" {
			return "", errors.New("empty input")
		}
		time.Sleep(delay)
		return vstring.CamelToUnderscore(vstring.ToAlnum(input)), nil
	}
}

func newMemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memo [inputs...]",
		Short: "Run a memoized transform over the inputs and print cache stats",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := env.NewLogger(cmd)
			cfg, err := env.LoadMemoConfig(cmd)
			if err != nil {
				return err
			}
			delay, err := cmd.Flags().GetDuration("delay")
			if err != nil {
				return errors.Wrap(err, "reading --delay")
			}
			log.Debug("memo config: capacity=%d ttl=%s key_strategy=%s concurrent=%v", cfg.Capacity, cfg.TTL, cfg.KeyStrategy, cfg.Concurrent)

			m := memo.New[string](cfg, memo.WithLogger(log), memo.WithName("transform"))
			transform := slowTransform(delay)
			results := make([]string, len(args))
			run := func(i int) error {
				started := time.Now()
				out, err := m.Do(memo.A(args[i]), func() (string, error) { return transform(args[i]) })
				if err != nil {
					return errors.Wrapf(err, "transforming %q", args[i])
				}
				results[i] = fmt.Sprintf("%s -> %s (%s)", args[i], out, time.Since(started).Round(time.Microsecond))
				return nil
			}

			if cfg.Concurrent {
				var g errgroup.Group
				for i := range args {
					g.Go(func() error { return run(i) })
				}
				err = g.Wait()
			} else {
				for i := range args {
					if err = run(i); err != nil {
						break
					}
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range results {
				fmt.Fprintln(out, line)
			}
			printStats(cmd, m.Stats(), m.Len())
			return nil
		},
	}
	cmd.Flags().String("config", "", "memo config file (env "+env.EnvConfig+")")
	cmd.Flags().Duration("delay", 100*time.Millisecond, "simulated cost of each computation")
	return cmd
}

func printStats(cmd *cobra.Command, stats memo.Stats, size int) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s, %s, %s, %s cached\n",
		vstring.Pluralize(int(stats.Hits), "hit", "hits"),
		vstring.Pluralize(int(stats.Misses), "miss", "misses"),
		vstring.Pluralize(int(stats.Evictions), "eviction", "evictions"),
		vstring.Pluralize(size, "entry", "entries"),
	)
}

func newCaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "case snake|camel <words...>",
		Short:     "Convert words between snake and camel case",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"snake", "camel"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var convert func(string) string
			switch args[0] {
			case "snake":
				convert = vstring.CamelToUnderscore
			case "camel":
				convert = vstring.UnderscoreToCamel
			default:
				return errors.Newf("unknown case %q, expected snake or camel", args[0])
			}
			log := env.NewLogger(cmd)
			if logger.IsDebugEnabled(log) {
				log.Debug("converting %d words to %s case", len(args)-1, args[0])
			}
			for _, word := range args[1:] {
				fmt.Fprintln(cmd.OutOrStdout(), convert(word))
			}
			return nil
		},
	}
	return cmd
}
