package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thesyncim/uicheck/pkg/driver"
	"github.com/thesyncim/uicheck/pkg/errext"
	"github.com/thesyncim/uicheck/pkg/runner"
	"github.com/thesyncim/uicheck/pkg/session"
)

type runCommand struct {
	root *rootCommand
	cmd  *cobra.Command

	tags           []string
	driver         string
	headless       bool
	browserBin     string
	elementTimeout time.Duration
	failFast       bool
}

func newRunCommand(root *rootCommand) *runCommand {
	c := &runCommand{root: root}
	c.cmd = &cobra.Command{
		Use:   "run [flags]",
		Short: "Run scenarios",
		Long: `Run every scenario in the catalog, or only those carrying one of --tags.

Session settings come from UICHECK_* environment variables and are
overridden by flags given on the command line.`,
		Example: `  uicheck run --tags regression
  UICHECK_DRIVER=playwright uicheck run --tags upload`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
	c.cmd.Flags().AddFlagSet(c.flagSet())
	return c
}

func (c *runCommand) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringSliceVarP(&c.tags, "tags", "t", nil, "run only scenarios with any of these tags")
	flags.StringVarP(&c.driver, "driver", "d", "", fmt.Sprintf("browser driver, one of %v", driver.Names()))
	flags.BoolVar(&c.headless, "headless", true, "run the browser without a window")
	flags.StringVar(&c.browserBin, "browser-bin", "", "browser executable to launch")
	flags.DurationVar(&c.elementTimeout, "element-timeout", 0, "upper bound for element lookups")
	flags.BoolVar(&c.failFast, "fail-fast", false, "stop after the first scenario that does not pass")
	return flags
}

// sessionConfig reads the environment and overlays explicitly set flags.
func (c *runCommand) sessionConfig() (session.Config, error) {
	cfg, err := session.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	flags := c.cmd.Flags()
	if flags.Changed("driver") {
		cfg.Driver = c.driver
	}
	if flags.Changed("headless") {
		cfg.Headless = c.headless
	}
	if flags.Changed("browser-bin") {
		cfg.BrowserBin = c.browserBin
	}
	if flags.Changed("element-timeout") {
		cfg.ElementTimeout = c.elementTimeout
	}
	return cfg, cfg.Validate()
}

func (c *runCommand) run(cmd *cobra.Command, _ []string) error {
	logger := c.root.logger

	cfg, err := c.sessionConfig()
	if err != nil {
		return errext.WithExitCodeIfNone(err, errext.InvalidConfig)
	}
	drv, err := driver.New(cfg)
	if err != nil {
		return errext.WithExitCodeIfNone(err, errext.InvalidConfig)
	}
	cat, err := c.root.loadCatalog()
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"driver":   cfg.Driver,
		"headless": cfg.Headless,
		"tags":     c.tags,
	}).Debug("Starting run")

	mgr := session.NewManager(drv, cfg, session.WithLogger(logger))
	sum := runner.New(mgr, cat, runner.Options{Logger: logger, FailFast: c.failFast}).Run(cmd.Context(), c.tags...)

	runner.Report(c.root.stdout, sum, c.root.colorize())
	return sum.Err()
}
