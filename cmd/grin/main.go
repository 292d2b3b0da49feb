// Command grin is the CLI entry-point for the Grin language: it reads a
// program (from a file or from standard input up to the "." sentinel),
// runs it against standard input/output, and persists the run so it can be
// replayed as a PDF report or tailed live via cmd/grin-server.
//
// Usage:
//
//	grin run      [-file path] [-config path] [-no-persist]   Execute a program
//	grin validate [-file path]                                 Lex + parse only
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/williamc15/Project3Final/internal/config"
	"github.com/williamc15/Project3Final/internal/errfmt"
	"github.com/williamc15/Project3Final/internal/grin/interpreter"
	"github.com/williamc15/Project3Final/internal/grin/parser"
	"github.com/williamc15/Project3Final/internal/runbus"
	"github.com/williamc15/Project3Final/internal/runstore"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "validate":
		cmdValidate(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  grin run      [-file path] [-config path] [-no-persist]  Execute a program")
	fmt.Fprintln(os.Stderr, "  grin validate [-file path]                                Lex + parse only")
}

// ---------------------------------------------------------------------------
// validate
// ---------------------------------------------------------------------------

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "path to a .grin program (default: stdin up to '.')")
	fs.Parse(args)

	lines, err := readProgramLines(*file, bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading program: %v\n", err)
		os.Exit(1)
	}

	if _, err := parser.Parse(lines); err != nil {
		reportError(err)
	}
}

// ---------------------------------------------------------------------------
// run
// ---------------------------------------------------------------------------

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	file := fs.String("file", "", "path to a .grin program (default: stdin up to '.')")
	configPath := fs.String("config", "grin.yaml", "path to YAML config file")
	redisAddr := fs.String("redis-addr", "", "override the configured Redis address")
	noPersist := fs.Bool("no-persist", false, "skip SQLite persistence and Redis event publishing")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	if *redisAddr != "" {
		cfg.RedisAddr = *redisAddr
	}

	// One shared reader over stdin: the program source (up to the "."
	// sentinel) and any INNUM/INSTR answers both come off the same stream,
	// matching the reference driver's single sys.stdin buffer. A second,
	// independent bufio.Reader here would read ahead into its own buffer
	// and silently swallow whatever input followed the sentinel.
	stdin := bufio.NewReader(os.Stdin)

	lines, err := readProgramLines(*file, stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading program: %v\n", err)
		os.Exit(1)
	}

	tokensPerLine, err := parser.Parse(lines)
	if err != nil {
		reportError(err)
	}

	runID := uuid.NewString()

	var store *runstore.Store
	var bus *runbus.Bus
	if !*noPersist {
		store, err = runstore.New(cfg.SQLitePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: run history disabled: %v\n", err)
		} else {
			defer store.Close()
			if err := store.CreateRun(runID, strings.Join(lines, "\n")); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record run start: %v\n", err)
			}
		}
		bus = runbus.New(cfg.RedisAddr, cfg.ChannelPrefix)
		defer bus.Close()
		publishEvent(bus, runbus.Event{RunID: runID, Type: "started", Timestamp: time.Now().UTC()})
	}

	in := &lineReader{r: stdin}
	out := &recordingWriter{
		runID: runID,
		store: store,
		bus:   bus,
		w:     os.Stdout,
	}

	runErr := interpreter.Run(tokensPerLine, in, out)

	status, errMsg := "ok", ""
	if runErr != nil {
		status = "error"
		errMsg = runErr.Error()
	}
	if store != nil {
		if err := store.FinishRun(runID, status, errMsg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run finish: %v\n", err)
		}
	}
	if bus != nil {
		publishEvent(bus, runbus.Event{
			RunID: runID, Type: "finished", Status: status, Timestamp: time.Now().UTC(),
		})
	}

	if runErr != nil {
		reportError(runErr)
	}
}

// reportError prints err's exact spec-mandated surface text to stderr, logs
// which of the three error kinds it is (lex/parse/runtime) for operators
// tailing process logs, and exits with the kind's exit code.
func reportError(err error) {
	fmt.Fprintln(os.Stderr, err)
	if kind := errfmt.Kind(err); kind != "" {
		log.Printf("grin: %s error", kind)
	}
	os.Exit(errfmt.ExitCode(err))
}

func publishEvent(bus *runbus.Bus, ev runbus.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := bus.Publish(ctx, ev); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not publish run event: %v\n", err)
	}
}

// readProgramLines reads program source either from a file or, per the
// reference driver, from standard input up to the "." sentinel line. When
// reading from stdin it consumes stdin directly rather than handing the
// caller a separate scanner over it, so whatever INNUM/INSTR answers follow
// the sentinel are still there for the interpreter to read afterward.
func readProgramLines(file string, stdin *bufio.Reader) ([]string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
	}

	var lines []string
	for {
		raw, err := stdin.ReadString('\n')
		line := strings.TrimRight(raw, "\r\n")
		if line == parser.Sentinel {
			return lines, nil
		}
		if err != nil {
			if err == io.EOF {
				if line != "" {
					lines = append(lines, line)
				}
				return lines, nil
			}
			return nil, err
		}
		lines = append(lines, line)
	}
}

// ---------------------------------------------------------------------------
// Input/Output adapters
// ---------------------------------------------------------------------------

// lineReader implements interpreter.Input over a buffered reader, for
// INNUM/INSTR.
type lineReader struct {
	r *bufio.Reader
}

func (l *lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// recordingWriter implements interpreter.Output, writing PRINT output to an
// underlying writer while also persisting it to runstore and publishing it
// to runbus, when those are configured.
type recordingWriter struct {
	runID string
	store *runstore.Store
	bus   *runbus.Bus
	w     io.Writer
}

func (r *recordingWriter) WriteLine(text string) error {
	if _, err := fmt.Fprintln(r.w, text); err != nil {
		return err
	}
	if r.store != nil {
		if err := r.store.RecordIOEvent(r.runID, 0, "print", text); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record output: %v\n", err)
		}
	}
	if r.bus != nil {
		publishEvent(r.bus, runbus.Event{
			RunID: r.runID, Type: "line", Text: text, Timestamp: time.Now().UTC(),
		})
	}
	return nil
}
