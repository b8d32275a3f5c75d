package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/thesyncim/uicheck/pkg/session"
)

// Report writes one line per scenario followed by the totals.
func Report(w io.Writer, s Summary, colorize bool) {
	succ := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	warn := color.New(color.FgYellow)
	gray := color.New(color.Faint)
	for _, c := range []*color.Color{succ, fail, warn, gray} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, r := range s.Results {
		mark, c := "✓", succ
		switch r.Outcome {
		case session.Failed:
			mark, c = "✗", fail
		case session.Errored:
			mark, c = "!", warn
		}
		_, _ = fmt.Fprintf(w, "%s %-16s %s\n", c.Sprint(mark), r.Name, gray.Sprint(r.Duration.Round(time.Millisecond)))
		if r.Err != nil {
			_, _ = fmt.Fprintf(w, "    %s\n", c.Sprint(r.Err))
		}
		if r.ReleaseErr != nil {
			_, _ = fmt.Fprintf(w, "    %s\n", gray.Sprintf("release: %v", r.ReleaseErr))
		}
	}

	_, _ = fmt.Fprintf(w, "\n%s passed, %s failed, %s errored in %s\n",
		succ.Sprint(s.Count(session.Passed)),
		fail.Sprint(s.Count(session.Failed)),
		warn.Sprint(s.Count(session.Errored)),
		s.Duration().Round(time.Millisecond))
	if s.Canceled {
		_, _ = fmt.Fprintln(w, warn.Sprint("run canceled"))
	}
}
