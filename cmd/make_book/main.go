// Command make_book builds an opening book from a PGN game stream read on
// stdin, writing a sorted binary book and a summary alongside it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kjhughes/openbook/internal/book"
	"github.com/kjhughes/openbook/internal/filter"
	"github.com/kjhughes/openbook/internal/logx"
	"github.com/kjhughes/openbook/internal/pgnstream"
	"github.com/kjhughes/openbook/internal/progress"
)

const usage = "Usage: make_book [-sampler reservoir|bernoulli] [-log-level level] <output_basename> <n_games> <accept_param> <max_depth> <start_eco> <end_eco> <seed>\n"

func main() {
	os.Exit(run())
}

func run() int {
	samplerVariant := flag.String("sampler", "reservoir", "sampling variant: reservoir (accept_param is the reservoir capacity) or bernoulli (accept_param is the denominator p)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		return 2
	}
	zerolog.SetGlobalLevel(lvl)

	args := flag.Args()
	if len(args) != 7 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	basename := args[0]
	nGames, err1 := strconv.Atoi(args[1])
	acceptParam, err2 := strconv.Atoi(args[2])
	maxDepth, err3 := strconv.Atoi(args[3])
	startECO, endECO := args[4], args[5]
	seed, err4 := strconv.ParseInt(args[6], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	var sampler filter.Sampler
	switch *samplerVariant {
	case "reservoir":
		sampler = filter.NewReservoir(acceptParam, seed)
	case "bernoulli":
		sampler = filter.NewBernoulli(acceptParam, seed)
	default:
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	log := logx.NewLogger()

	inputPath, err := pgnstream.SpoolStdin(os.Stdin)
	if err != nil {
		log.Error().Err(err).Msg("failed to spool PGN input")
		return 1
	}
	defer os.Remove(inputPath)

	prog := progress.NewPrinter(log, nGames)
	vis := book.NewVisitor(filter.NewECO(startECO, endECO), sampler, maxDepth, prog)

	gamesSeen, err := pgnstream.Drive(inputPath, vis)
	if err != nil {
		log.Warn().Err(err).Int("games_seen", gamesSeen).Msg("PGN stream ended early")
	}

	binPath := basename + ".bin"
	summary, err := vis.Creator().Dump(binPath)
	if err != nil {
		log.Error().Err(err).Str("path", binPath).Msg("failed to write book")
		return 1
	}
	if err := summary.WriteFile(basename + ".txt"); err != nil {
		log.Error().Err(err).Str("path", basename+".txt").Msg("failed to write summary")
		return 1
	}

	log.Info().
		Int("games", summary.Games).
		Int("moves", summary.Moves).
		Int("games_seen", gamesSeen).
		Msg("build complete")
	fmt.Printf("\nDumped %d edges from %d games\n", summary.Moves, summary.Games)
	return 0
}
