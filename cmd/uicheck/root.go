package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thesyncim/uicheck/pkg/errext"
	"github.com/thesyncim/uicheck/pkg/scenario"
)

var bannerColor = color.New(color.FgCyan)

type rootCommand struct {
	ctx    context.Context
	logger *logrus.Logger
	cmd    *cobra.Command
	stdout io.Writer
	stderr io.Writer

	stdoutTTY bool
	stderrTTY bool

	logFmt      string
	verbose     bool
	noColor     bool
	catalogPath string
	sites       map[string]string
}

func newRootCommand(ctx context.Context, stdout, stderr io.Writer) *rootCommand {
	c := &rootCommand{
		ctx:    ctx,
		logger: logrus.New(),
		stdout: stdout,
		stderr: stderr,
	}
	c.logger.SetOutput(stderr)
	c.cmd = &cobra.Command{
		Use:               "uicheck",
		Short:             "browser checks for the demo sites",
		Long:              bannerColor.Sprint("uicheck") + " runs browser scenarios, one fresh session each.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetOut(stdout)
	c.cmd.SetErr(stderr)
	c.cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errext.WithExitCodeIfNone(err, errext.InvalidConfig)
	})
	c.cmd.PersistentFlags().AddFlagSet(c.persistentFlagSet())
	c.cmd.AddCommand(newRunCommand(c).cmd, newListCommand(c).cmd)
	return c
}

func (c *rootCommand) persistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVar(&c.logFmt, "log-format", "text", "log output format: text or json")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	flags.StringVarP(&c.catalogPath, "catalog", "c", "", "scenario catalog YAML file (default: built-in)")
	flags.StringToStringVar(&c.sites, "site", nil, "override a site base URL, e.g. --site the-internet=http://localhost:8080")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	c.logger.SetLevel(logrus.InfoLevel)
	if c.verbose {
		c.logger.SetLevel(logrus.DebugLevel)
	}
	switch c.logFmt {
	case "text":
		c.logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.stderrTTY && !c.noColor,
			DisableColors: !c.stderrTTY || c.noColor,
		})
	case "json":
		c.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errext.WithExitCodeIfNone(fmt.Errorf("unknown log format %q", c.logFmt), errext.InvalidConfig)
	}
	c.logger.Debugf("uicheck %s", cmd.Name())
	return nil
}

func (c *rootCommand) colorize() bool {
	return c.stdoutTTY && !c.noColor
}

// loadCatalog reads the configured catalog and applies site overrides.
func (c *rootCommand) loadCatalog() (*scenario.Catalog, error) {
	var (
		cat *scenario.Catalog
		err error
	)
	if c.catalogPath != "" {
		cat, err = scenario.LoadFile(c.catalogPath)
	} else {
		cat, err = scenario.Default()
	}
	if err != nil {
		return nil, errext.WithExitCodeIfNone(err, errext.InvalidConfig)
	}
	for name := range c.sites {
		if _, ok := cat.Sites[name]; !ok {
			return nil, errext.WithExitCodeIfNone(fmt.Errorf("--site: unknown site %q", name), errext.InvalidConfig)
		}
	}
	return cat.WithSites(c.sites), nil
}

// execute runs the command tree and logs any error that escapes it.
func (c *rootCommand) execute() error {
	err := c.cmd.ExecuteContext(c.ctx)
	if err == nil {
		return nil
	}
	fields := logrus.Fields{"exit_code": errext.Code(err)}
	var hinted errext.HasHint
	if errors.As(err, &hinted) {
		fields["hint"] = hinted.Hint()
	}
	c.logger.WithFields(fields).Error(err)
	return err
}
