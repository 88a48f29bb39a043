// Package cli implements the reader's line-oriented command protocol.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kjhughes/openbook/internal/engine"
	"github.com/kjhughes/openbook/internal/store"
)

// REPL drives the reader's command loop (SPEC_FULL.md §4.9): read a line,
// parse it into a command name and positional arguments, dispatch, repeat
// until exit/quit or EOF. It processes one command to completion before
// reading the next line — no concurrent command handling.
type REPL struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer

	books *store.Store

	// current is the book path fromfen and positionfromseq use when the
	// command omits one: either the path book_reader was launched with in
	// single-book mode, or the path the most recent openbook set.
	current string
}

// New returns a REPL. initialBook is the fixed path for single-book mode
// (`book_reader <path>`), or "" for multi-book mode.
func New(in io.Reader, out, errOut io.Writer, initialBook string) *REPL {
	return &REPL{
		in:      bufio.NewScanner(in),
		out:     out,
		errOut:  errOut,
		books:   store.New(),
		current: initialBook,
	}
}

// Preopen eagerly loads the single-book path the REPL was constructed with,
// surfacing a load failure to stderr immediately rather than on the first
// query. It is a no-op in multi-book mode (no initial book set).
func (r *REPL) Preopen() {
	if r.current == "" {
		return
	}
	if _, err := r.books.Get(r.current); err != nil {
		fmt.Fprintf(r.errOut, "book_reader: %v\n", err)
	}
}

// Run reads commands until exit/quit or EOF, returning the process exit
// code that should follow (0 for a normal exit or EOF).
func (r *REPL) Run() int {
	for r.in.Scan() {
		fields := strings.Fields(r.in.Text())
		if len(fields) == 0 {
			continue
		}
		if code, exit := r.dispatch(fields[0], fields[1:]); exit {
			return code
		}
	}
	return 0
}

// dispatch runs one command. exit reports whether the REPL should stop.
func (r *REPL) dispatch(name string, args []string) (code int, exit bool) {
	switch name {
	case "exit", "quit":
		return 0, true
	case "fromfen":
		r.cmdFromFEN(args)
	case "positionfromseq":
		r.cmdPositionFromSeq(args)
	case "openbook":
		r.cmdOpenBook(args)
	case "closebook":
		r.cmdCloseBook(args)
	default:
		fmt.Fprintf(r.errOut, "unknown command: %s\n", name)
	}
	return 0, false
}

// cmdFromFEN accepts either the multi-book form (explicit book path + 6 FEN
// fields) or, when a current book is set, the single-book form (6 FEN
// fields alone).
func (r *REPL) cmdFromFEN(args []string) {
	var bookPath string
	var fenFields []string

	switch {
	case len(args) == 7:
		bookPath, fenFields = args[0], args[1:]
	case len(args) == 6 && r.current != "":
		bookPath, fenFields = r.current, args
	default:
		fmt.Fprintln(r.errOut, "usage: fromfen [book] <6 fen fields>")
		return
	}

	board, err := engine.FromFEN(strings.Join(fenFields, " "))
	if err != nil {
		fmt.Fprintf(r.errOut, "fromfen: %v\n", err)
		return
	}
	r.respondEdges(bookPath, board.Hash())
}

func (r *REPL) cmdPositionFromSeq(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.errOut, "usage: positionfromseq <K> <m1> ... <mK>")
		return
	}
	k, err := strconv.Atoi(args[0])
	if err != nil || k < 0 || len(args) != k+1 {
		fmt.Fprintln(r.errOut, "usage: positionfromseq <K> <m1> ... <mK>")
		return
	}
	if r.current == "" {
		fmt.Fprintln(r.errOut, "positionfromseq: no book is open (use openbook or launch with a path)")
		return
	}

	board := engine.FromStartPos()
	for _, uci := range args[1:] {
		if err := board.MakeUCIMove(uci); err != nil {
			fmt.Fprintf(r.errOut, "positionfromseq: replay %q: %v\n", uci, err)
			return
		}
	}
	r.respondEdges(r.current, board.Hash())
}

func (r *REPL) respondEdges(bookPath string, hash uint64) {
	entries, err := r.books.Get(bookPath)
	if err != nil {
		fmt.Fprintf(r.errOut, "fromfen: %v\n", err)
		return
	}
	edges := store.FindEdges(entries, hash)

	fmt.Fprintf(r.out, "positionmoves %d\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(r.out, "%s %d\n", e.Move.ToUCI(), e.Count)
	}
}

func (r *REPL) cmdOpenBook(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.errOut, "usage: openbook <path>")
		return
	}
	if _, err := r.books.Get(args[0]); err != nil {
		fmt.Fprintf(r.errOut, "openbook: %v\n", err)
		return
	}
	r.current = args[0]
}

func (r *REPL) cmdCloseBook(args []string) {
	if len(args) != 0 {
		fmt.Fprintln(r.errOut, "usage: closebook")
		return
	}
	if r.current == "" {
		return
	}
	r.books.Close(r.current)
	r.current = ""
}
