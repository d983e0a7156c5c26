// Package main provides the rowplan CLI.
//
// rowplan derives deserialization plans from a shape definition file and
// prints, for each named type, the derived input schema and the conversion
// expression tree:
//
//	rowplan [-dump] schema.yaml [type ...]
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"

	"rowplan/expr"
	"rowplan/plan"
	"rowplan/schemafile"
)

func main() {
	dump := flag.Bool("dump", false, "dump the raw plan structure")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: rowplan [-dump] <schema-file> [type ...]")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:], *dump); err != nil {
		fmt.Fprintln(os.Stderr, "rowplan:", err)
		os.Exit(1)
	}
}

func run(path string, names []string, dump bool) error {
	file, err := schemafile.LoadFile(path)
	if err != nil {
		return err
	}

	diags := file.Validate()
	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	if err := diags.Error(); err != nil {
		return err
	}

	shapes, err := file.Resolve(nil)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		for name := range shapes {
			names = append(names, name)
		}

		sort.Strings(names)
	}

	for _, name := range names {
		s, ok := shapes[name]
		if !ok {
			return fmt.Errorf("type %q is not defined in %s", name, path)
		}

		p, err := plan.Derive(s)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", name, p.InputType())

		root := &expr.InputRef{Name: "row", Type: p.InputType()}
		fmt.Print(expr.Format(p.Build(root)))

		if dump {
			spew.Dump(p)
		}

		fmt.Println()
	}

	return nil
}
