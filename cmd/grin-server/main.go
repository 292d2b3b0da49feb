// Command grin-server serves a live view of Grin program runs: a WebSocket
// that tails a run's events from Redis, and an on-demand PDF report
// generated from its SQLite history. It also optionally watches a
// directory of .grin files and re-validates (lex + parse) any that change.
//
// Usage:
//
//	grin-server [-config path]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/williamc15/Project3Final/internal/config"
	"github.com/williamc15/Project3Final/internal/live"
	"github.com/williamc15/Project3Final/internal/report"
	"github.com/williamc15/Project3Final/internal/runbus"
	"github.com/williamc15/Project3Final/internal/runstore"
	"github.com/williamc15/Project3Final/internal/watch"
)

func main() {
	configPath := flag.String("config", "grin.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	store, err := runstore.New(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("error opening run store: %v", err)
	}
	defer store.Close()

	bus := runbus.New(cfg.RedisAddr, cfg.ChannelPrefix)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/runs/", func(w http.ResponseWriter, r *http.Request) {
		runID, action, ok := parseRunPath(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		switch action {
		case "live":
			handleLive(ctx, bus, w, r, runID)
		case "report.pdf":
			handleReport(store, w, r, runID)
		default:
			http.NotFound(w, r)
		}
	})

	if _, err := os.Stat(cfg.WatchDir); err == nil {
		go watchPrograms(cfg)
	}

	log.Printf("grin-server listening on %s", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: mux}

	go func() {
		<-sigCh
		log.Println("shutting down")
		cancel()
		srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// parseRunPath extracts the run id and trailing action from
// "/runs/{id}/{action}".
func parseRunPath(path string) (runID, action string, ok bool) {
	rest, found := trimPrefix(path, "/runs/")
	if !found {
		return "", "", false
	}
	parts := splitOnce(rest, '/')
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func trimPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}
	return s[len(prefix):], true
}

func splitOnce(s string, sep byte) []string {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return []string{s[:i], s[i+1:]}
		}
	}
	return []string{s}
}

func handleLive(ctx context.Context, bus *runbus.Bus, w http.ResponseWriter, r *http.Request, runID string) {
	session, err := live.Accept(w, r)
	if err != nil {
		log.Printf("live: accept failed: %v", err)
		return
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go live.Tail(sessionCtx, bus, session, runID)
	session.Serve(sessionCtx)
}

func handleReport(store *runstore.Store, w http.ResponseWriter, r *http.Request, runID string) {
	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, fmt.Sprintf("run %s not found", runID), http.StatusNotFound)
		return
	}
	events, err := store.ListIOEvents(runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := report.Generate(w, run, events); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// watchPrograms re-validates (via "grin validate") any .grin file that
// changes in cfg.WatchDir, logging the result. It never blocks main's HTTP
// serving loop.
func watchPrograms(cfg config.Config) {
	stop := make(chan struct{})
	err := watch.Watch(cfg.WatchDir, cfg.WatchDebounce, func(path string) {
		exe, err := os.Executable()
		if err != nil {
			exe = "grin"
		} else {
			exe = filepath.Join(filepath.Dir(exe), "grin")
		}
		cmd := exec.Command(exe, "validate", "-file", path)
		if out, err := cmd.CombinedOutput(); err != nil {
			log.Printf("watch: %s failed validation: %v\n%s", path, err, out)
		} else {
			log.Printf("watch: %s is valid", path)
		}
	}, stop)
	if err != nil {
		log.Printf("watch: %v", err)
	}
}
