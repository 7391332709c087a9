// Command minimumcheck verifies the minimum operation on the host and in an
// offloaded execution context. It exits with status 0 when every assertion
// holds and 1 otherwise.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmsadair/functional"
	"github.com/jmsadair/functional/logging"
)

type config struct {
	logLevel string
	timeout  time.Duration
}

func addFlags(flags *pflag.FlagSet, cfg *config) {
	flags.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "how long to wait for each offloaded evaluation")
}

func newRootCommand() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "minimumcheck",
		Short: "Verify the minimum operation in every form and execution context",
		Args:  cobra.NoArgs,

		// A failed assertion is not a usage error.
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}
	addFlags(cmd.Flags(), cfg)
	return cmd
}

func run(cfg *config) error {
	level, err := logging.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(logging.WithLevel(level), logging.WithPrefix("minimumcheck: "))
	if err != nil {
		return err
	}

	executor, err := functional.NewExecutor(
		functional.WithLogger(logger),
		functional.WithTimeout(cfg.timeout),
	)
	if err != nil {
		return err
	}
	executor.Start()
	defer executor.Stop()

	cases := functional.Cases()
	if err := functional.VerifyAll(executor, cases); err != nil {
		var verificationErr *functional.VerificationError
		if errors.As(err, &verificationErr) {
			for _, failure := range verificationErr.Failures {
				logger.Errorf("%s", failure.Error())
			}
		}
		return errors.Wrap(err, "verification failed")
	}

	logger.Infof("all %d cases passed in host and offload contexts", len(cases))
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "minimumcheck:", err)
		os.Exit(1)
	}
}
