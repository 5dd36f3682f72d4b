//go:build ignore
// +build ignore

// Generates CLI reference docs. Run from the repo root:
//
//	go run cmd/inkdraft/doc_gen.go -out docs
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/inkdraft/inkdraft/internal/cli"
)

func main() {
	out := flag.String("out", "docs", "output directory for generated docs")
	flag.Parse()

	root := cli.NewRootCmd()
	root.DisableAutoGenTag = true

	mdDir := filepath.Join(*out, "markdown")
	manDir := filepath.Join(*out, "man")
	for _, dir := range []string{mdDir, manDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	if err := doc.GenMarkdownTree(root, mdDir); err != nil {
		log.Fatal(err)
	}
	if err := doc.GenManTree(root, &doc.GenManHeader{Title: "INKDRAFT", Section: "1"}, manDir); err != nil {
		log.Fatal(err)
	}
}
