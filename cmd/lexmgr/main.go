package main

import (
	"fmt"
	"os"

	"github.com/frezerotation/humaniser/pkg/humanizer"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	path := os.Args[1]
	command := os.Args[2]

	lex, err := humanizer.LoadLexicon(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "validate":
		// LoadLexicon already validated and compiled the tables.
		fmt.Printf("OK: %s (%d synonyms, %d contractions, %d expansions)\n",
			lex.Language, len(lex.Synonyms), len(lex.Contractions), len(lex.Expansions))

	case "show":
		fmt.Printf("Language:     %s\n", lex.Language)
		fmt.Printf("Synonyms:     %d\n", len(lex.Synonyms))
		fmt.Printf("Contractions: %d\n", len(lex.Contractions))
		fmt.Printf("Expansions:   %d\n", len(lex.Expansions))
		fmt.Printf("Conjunctions: %v\n", lex.Conjunctions)
		fmt.Printf("Markers:      %d\n", len(lex.Markers))

	case "keys":
		for _, key := range lex.SynonymKeys() {
			fmt.Printf("%s -> %v\n", key, lex.Synonyms[key])
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: lexmgr <lexicon.json> <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate   parse and compile the lexicon, report its sizes")
	fmt.Println("  show       print a summary of the rule tables")
	fmt.Println("  keys       print synonym keys in scan order")
}
