package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/haikuflow/config"
	"github.com/spacesedan/haikuflow/internal/haiku"
	"github.com/spacesedan/haikuflow/internal/logging"
)

type poemProcessor interface {
	Process(text string) (string, error)
}

var quitWords = map[string]bool{"quit": true, "exit": true, "bye": true}

func main() {
	seed := flag.Uint64("seed", 0, "seed for reproducible haiku (0 picks a random source)")
	text := flag.String("text", "", "generate one haiku for this mood and exit")
	flag.Parse()

	config.LoadEnv(config.AppEnv())
	logging.InitLoggerTo(os.Stderr)
	cfg := config.GetHaikuConfig()

	var opts []haiku.Option
	switch {
	case *seed != 0:
		opts = append(opts, haiku.WithSeed(*seed))
	case cfg.Seed != nil:
		opts = append(opts, haiku.WithSeed(*cfg.Seed))
	}

	gen, err := haiku.NewGeneratorFromDisk(cfg.WordNetDir, cfg.CMUDictPath, opts...)
	if err != nil {
		slog.Error("[Main] Failed to load lexical resources",
			slog.String("wordnet_dir", cfg.WordNetDir),
			slog.String("cmudict_path", cfg.CMUDictPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *text != "" {
		poem, err := gen.Process(*text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(poem)
		return
	}

	runREPL(os.Stdin, os.Stdout, gen)
}

// runREPL reads one mood per line until EOF or a quit word.
func runREPL(in io.Reader, out io.Writer, gen poemProcessor) {
	fmt.Fprintln(out, "Mood Haiku Generator")
	fmt.Fprintln(out, "How are you feeling today? (quit, exit or bye to leave)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Your mood: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if quitWords[strings.ToLower(line)] {
			return
		}
		if line == "" {
			fmt.Fprintln(out, "Please enter your mood description.")
			continue
		}

		poem, err := gen.Process(line)
		if err != nil {
			fmt.Fprintf(out, "An error occurred: %v\n", err)
			continue
		}

		fmt.Fprintf(out, "\nYour Mood Haiku:\n%s\n\n", poem)
	}
}
