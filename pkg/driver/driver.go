// Package driver selects a browser-automation backend by name.
package driver

import (
	"fmt"
	"sort"

	"github.com/thesyncim/uicheck/pkg/driver/pwdriver"
	"github.com/thesyncim/uicheck/pkg/driver/roddriver"
	"github.com/thesyncim/uicheck/pkg/session"
)

type factory func(cfg session.Config) session.Driver

var factories = map[string]factory{
	roddriver.Name: func(cfg session.Config) session.Driver {
		return roddriver.New(roddriver.Config{Headless: cfg.Headless, Bin: cfg.BrowserBin})
	},
	pwdriver.Name: func(cfg session.Config) session.Driver {
		return pwdriver.New(pwdriver.Config{Headless: cfg.Headless, Bin: cfg.BrowserBin})
	},
}

// New returns the driver named by cfg.Driver.
func New(cfg session.Config) (session.Driver, error) {
	f, ok := factories[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q (available: %v)", cfg.Driver, Names())
	}
	return f(cfg), nil
}

// Names lists the registered driver names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
