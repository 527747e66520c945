package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/mkarsten/fidget/cmd"
)

// Generates the man page and shell completions from the command definition.
func main() {
	root := cmd.NewRootCmd()

	if err := os.MkdirAll("man", 0o755); err != nil {
		log.Fatal(err)
	}
	header := &doc.GenManHeader{Title: "FIDGET", Section: "1"}
	if err := doc.GenManTree(root, header, "man"); err != nil {
		log.Fatal(err)
	}

	base := filepath.Join("docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		log.Fatal(err)
	}
	if err := root.GenBashCompletionFile(filepath.Join(base, "fidget.bash")); err != nil {
		log.Fatal(err)
	}
	if err := root.GenZshCompletionFile(filepath.Join(base, "_fidget")); err != nil {
		log.Fatal(err)
	}
	if err := root.GenFishCompletionFile(filepath.Join(base, "fidget.fish"), true); err != nil {
		log.Fatal(err)
	}
}
