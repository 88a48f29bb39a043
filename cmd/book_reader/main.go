// Command book_reader serves opening-book position queries over a
// line-oriented protocol on stdin/stdout. Launched with a path, it serves
// that book by default; launched with none, a fromfen request names its
// book explicitly unless an openbook has set a current book (SPEC_FULL.md
// §4.9, §6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kjhughes/openbook/internal/cli"
	"github.com/kjhughes/openbook/internal/logx"
)

const usage = "Usage: book_reader [-log-level level] [path]\n"

func main() {
	os.Exit(run())
}

func run() int {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		return 2
	}
	zerolog.SetGlobalLevel(lvl)
	log := logx.NewLogger()

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	var bookPath string
	if len(args) == 1 {
		bookPath = args[0]
	}

	repl := cli.New(os.Stdin, os.Stdout, os.Stderr, bookPath)
	log.Info().Str("book", bookPath).Msg("book_reader starting")
	repl.Preopen()
	code := repl.Run()
	log.Info().Int("exit_code", code).Msg("book_reader exiting")
	return code
}
