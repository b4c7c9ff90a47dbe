// Command sqlquery renders a YAML statement definition to SQL text.
//
//	sqlquery -f query.yaml
//
// The SQL is printed to stdout. With -debug, diagnostics and the
// prefixed debug line go to stderr, so stdout stays pipeable.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/foreline/sqlquery"
	"github.com/pkg/errors"
)

func main() {
	path := flag.String("f", "query.yaml", "path to the statement definition")
	debug := flag.Bool("debug", false, "print diagnostics and the prefixed statement to stderr")
	flag.Parse()

	if err := run(*path, *debug, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "sqlquery: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, debug bool, stdout, stderr io.Writer) error {
	def, err := sqlquery.LoadDefinition(path)
	if err != nil {
		return err
	}
	stmt := def.Statement()
	if debug {
		logger := log.New(stderr, "sqlquery: ", log.LstdFlags|log.Lmicroseconds)
		logger.Printf("loaded %s statement from %s", stmt.Kind(), path)
		stmt.DebugTo(stderr, path)
	}
	query, err := stmt.Render()
	if err != nil {
		return errors.Wrapf(err, "render %s", path)
	}
	_, err = fmt.Fprintln(stdout, query)
	return err
}
