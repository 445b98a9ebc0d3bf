// Enumgen generates enumset ordinal mappings for C-like
// enumeration types.
//
// Given a type T declared as an integer type with a conventional
// iota const block, it writes <t>_mapping.go containing a TMapping
// type implementing enumset.Mapping[T]. Ineligible types (more
// than 32 members, non-integer kind, explicit or gapped values)
// fail the run with a message identifying the violated rule, and
// nothing is written.
//
// Usage:
//
//	enumgen -type T [-output file.go] [package]
//
// The package argument defaults to the current directory, which
// makes enumgen suitable for use with go generate:
//
//	//go:generate enumgen -type=Color
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/go-enumset/enumset/gen"
)

var (
	typeName = flag.String("type", "", "enumeration type name; required")
	output   = flag.String("output", "", "output file name; default <type>_mapping.go in the package directory")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: enumgen -type T [-output file.go] [package]\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("enumgen: ")
	flag.Usage = usage
	flag.Parse()
	if *typeName == "" {
		flag.Usage()
		os.Exit(2)
	}
	pattern := "."
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		pattern = args[0]
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err := run(pattern); err != nil {
		log.Fatal(err)
	}
}

func run(pattern string) error {
	pkg, err := load(pattern)
	if err != nil {
		return err
	}
	e, err := gen.FromSyntax(pkg.Name, *typeName, pkg.Syntax)
	if err != nil {
		return err
	}
	src, err := e.Source()
	if err != nil {
		return err
	}
	out := *output
	if out == "" {
		dir := "."
		if len(pkg.GoFiles) > 0 {
			dir = filepath.Dir(pkg.GoFiles[0])
		}
		out = filepath.Join(dir, strings.ToLower(*typeName)+"_mapping.go")
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}

func load(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%s matched %d packages; want exactly 1", pattern, len(pkgs))
	}
	return pkgs[0], nil
}
