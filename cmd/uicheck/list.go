package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type listCommand struct {
	root *rootCommand
	cmd  *cobra.Command
	tags []string
}

func newListCommand(root *rootCommand) *listCommand {
	c := &listCommand{root: root}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "List scenarios and the URLs they open",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().StringSliceVarP(&c.tags, "tags", "t", nil, "list only scenarios with any of these tags")
	return c
}

func (c *listCommand) run(_ *cobra.Command, _ []string) error {
	cat, err := c.root.loadCatalog()
	if err != nil {
		return err
	}
	for _, cs := range cat.Cases(c.tags...) {
		_, _ = fmt.Fprintf(c.root.stdout, "%-16s %-50s [%s]\n", cs.Name, cs.URL(), strings.Join(cs.Spec.Tags, " "))
	}
	return nil
}
