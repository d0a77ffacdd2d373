// inkdump compiles a source file and prints the resulting drawing program as
// JSON. Useful for eyeballing layout and theme output without a backend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wudi/inkkit/compiler"
	"github.com/wudi/inkkit/ink"
	"github.com/wudi/inkkit/notes"
)

func main() {
	language := flag.String("lang", "", "source language (default: from file extension)")
	theme := flag.String("theme", "", "theme name")
	strokeMode := flag.Bool("strokes", false, "synthesize pen strokes instead of text runs")
	lineNumbers := flag.Bool("n", false, "show line numbers")
	debug := flag.Bool("debug", false, "overlay the alignment grid")
	asNote := flag.Bool("note", false, "treat input as a markdown note with fenced code blocks")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inkdump [flags] <file>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}

	opts := compiler.DefaultOptions()
	opts.StrokeMode = *strokeMode
	opts.ShowLineNumbers = *lineNumbers
	opts.DebugMode = *debug

	lang := *language
	if lang == "" {
		lang = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	e := compiler.New()
	req := compiler.Request{
		Source:   string(data),
		Language: lang,
		Theme:    *theme,
		Metadata: &ink.Metadata{Filename: filepath.Base(path), Language: lang},
		Options:  opts,
	}

	var doc *ink.Document
	if *asNote {
		doc, err = notes.Compile(context.Background(), e, notes.ParseMarkdown(string(data)), req)
	} else {
		doc, err = e.Compile(context.Background(), req)
	}
	if err != nil {
		fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "inkdump:", err)
	os.Exit(1)
}
