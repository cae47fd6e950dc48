package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frezerotation/humaniser/pkg/textdiff"
)

func main() {
	delOpen := flag.String("del-open", "<del>", "marker opening a deleted token")
	delClose := flag.String("del-close", "</del>", "marker closing a deleted token")
	insOpen := flag.String("ins-open", "<ins>", "marker opening an inserted token")
	insClose := flag.String("ins-close", "</ins>", "marker closing an inserted token")
	similarity := flag.Bool("similarity", false, "also print a similarity ratio to stderr")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: diffview [flags] <original-file> <rewritten-file>")
		os.Exit(1)
	}

	original, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
	rewritten, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(1), err)
		os.Exit(1)
	}

	renderer := textdiff.NewRenderer()
	renderer.DeleteOpen = *delOpen
	renderer.DeleteClose = *delClose
	renderer.InsertOpen = *insOpen
	renderer.InsertClose = *insClose

	fmt.Println(renderer.Highlight(string(original), string(rewritten)))

	if *similarity {
		fmt.Fprintf(os.Stderr, "similarity: %.4f\n", textdiff.Similarity(string(original), string(rewritten)))
	}
}
