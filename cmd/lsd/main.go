// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Kirill Semyonkin
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/kirillsemyonkin/lsd"
)

var (
	pathFlag  = flag.StringP("path", "p", "", "dot-separated path to print instead of the whole document")
	quietFlag = flag.BoolP("quiet", "q", false, "only log errors, not progress")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [FLAGS...] FILE.lsd\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	log := newLogger(*quietFlag)
	defer log.Sync()

	path := flag.Arg(0)
	log.Debug("parsing document", zap.String("path", path))

	root, err := lsd.ParseFile(path)
	if err != nil {
		log.Error("parse failed", zap.Error(err))
		os.Exit(1)
	}

	target := root
	if *pathFlag != "" {
		segments := splitPath(*pathFlag)
		found, ok := target.Inner(segments...)
		if !ok {
			log.Error("path not found in document", zap.String("path", *pathFlag))
			os.Exit(1)
		}
		target = found
	}

	out, err := yaml.Marshal(toYAML(target))
	if err != nil {
		log.Error("failed to render document", zap.Error(err))
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

func newLogger(quiet bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if quiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		// zap itself failed to build; fall back to a bare logger rather
		// than print-and-panic before any logging exists.
		return zap.NewNop()
	}
	return log
}

// splitPath splits a dot-separated --path flag value into segments. Unlike
// lsd's own key-path grammar, this accepts empty segments as literal empty
// strings rather than failing, since it's a CLI convenience, not a document.
func splitPath(s string) []string {
	if s == "" {
		return nil
	}
	var segs []string
	start := 0
	for i, r := range s {
		if r == '.' {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	segs = append(segs, s[start:])
	return segs
}

// toYAML converts an lsd.Node (by way of its ToInterface/LevelEntry
// shape) into yaml.MapSlice-based values so marshaling preserves the
// document's original key order instead of yaml.v2's own map ordering.
func toYAML(n lsd.Node) interface{} {
	return convert(n.ToInterface())
}

func convert(v interface{}) interface{} {
	switch v := v.(type) {
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = convert(item)
		}
		return out
	case []lsd.LevelEntry:
		out := make(yaml.MapSlice, len(v))
		for i, entry := range v {
			out[i] = yaml.MapItem{Key: entry.Key, Value: convert(entry.Value)}
		}
		return out
	default:
		return v
	}
}
