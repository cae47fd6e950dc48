package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/frezerotation/humaniser/pkg/humanizer"
)

func main() {
	defaults := humanizer.DefaultOptions()

	tone := flag.String("tone", string(defaults.Tone), "tone: formal, casual or friendly")
	variability := flag.String("variability", string(defaults.Variability), "variability: low, medium or high")
	contractions := flag.Bool("contractions", defaults.Contractions, "apply contractions (ignored under formal tone)")
	shorten := flag.Bool("shorten", defaults.Shorten, "split overlong sentences")
	strength := flag.Float64("strength", defaults.Strength, "probability multiplier in [0,1]")
	lang := flag.String("lang", string(defaults.Language), "language: auto, en or nl")
	aggressive := flag.Bool("aggressive", false, "enable aggressive rewrite heuristics")
	seed := flag.Uint("seed", 0, "generator seed (0 uses the built-in default)")
	lexPath := flag.String("lexicon", "", "optional extra lexicon JSON file")
	report := flag.Bool("report", false, "print a JSON rewrite report to stderr")
	flag.Parse()

	opts := humanizer.Options{
		Tone:         humanizer.Tone(*tone),
		Variability:  humanizer.Variability(*variability),
		Contractions: *contractions,
		Shorten:      *shorten,
		Strength:     *strength,
		Language:     humanizer.Lang(*lang),
		Aggressive:   *aggressive,
		Seed:         uint32(*seed),
	}

	rw, err := newRewriter(opts, *lexPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}

	// Text from arguments, else from stdin; no stdin and no arguments
	// drops into interactive mode.
	if flag.NArg() > 0 {
		text := strings.Join(flag.Args(), " ")
		emit(rw, text, opts.Language, *report)
		return
	}

	info, _ := os.Stdin.Stat()
	if info != nil && info.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		emit(rw, string(data), opts.Language, *report)
		return
	}

	fmt.Println("humanize (interactive mode)")
	fmt.Println("Type a line, press Enter to rewrite it. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		fmt.Printf("  %s\n\n", rw.Humanize(line))
	}
}

func newRewriter(opts humanizer.Options, lexPath string) (*humanizer.Rewriter, error) {
	if lexPath == "" {
		return humanizer.New(opts), nil
	}
	extra, err := humanizer.LoadLexicon(lexPath)
	if err != nil {
		return nil, err
	}
	lexicons := humanizer.BuiltinLexicons()
	return humanizer.NewWithLexicons(opts, append(lexicons, extra)), nil
}

func emit(rw *humanizer.Rewriter, text string, lang humanizer.Lang, report bool) {
	rewritten := rw.Humanize(text)
	fmt.Print(rewritten)
	if !strings.HasSuffix(rewritten, "\n") {
		fmt.Println()
	}
	if report {
		out, _ := json.MarshalIndent(humanizer.Analyze(text, rewritten, lang), "", "  ")
		fmt.Fprintln(os.Stderr, string(out))
	}
}
