package sqlquery

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type debugger struct {
	debug bool // debug mode
	name  string
	out   io.Writer
}

// Debug enables debug mode which prints the rendered statement to stdout.
func (s *Statement) Debug(name ...string) *Statement {
	return s.DebugTo(os.Stdout, name...)
}

// DebugTo is like Debug but prints to w.
func (s *Statement) DebugTo(w io.Writer, name ...string) *Statement {
	s.debugger.enable(w, name...)
	return s
}

func (d *debugger) enable(w io.Writer, name ...string) {
	d.debug = true
	d.out = w
	if len(name) == 0 {
		d.name = "sqlquery"
		return
	}
	d.name = strings.Replace(strings.Join(name, "_"), " ", "_", -1)
}

// printIfDebug prints the rendered statement in debug mode.
func (d *debugger) printIfDebug(query string) {
	if !d.debug {
		return
	}
	prefix := d.name
	if prefix == "" {
		prefix = "sqlquery"
	}
	out := d.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "[%s] %s\n", prefix, query)
}
