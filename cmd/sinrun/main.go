// Command sinrun loads a scenario, evaluates it to normal form, and
// reports the result — the runtime's demo driver, built the way the
// teacher's test/histogram and verify/cmd mains are: structured logging
// to a file, progress banners to stdout, a fluent config builder.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/runtime"
	"github.com/ydewit/sinrt/scenario"
	"github.com/ydewit/sinrt/sinconfig"
	"github.com/ydewit/sinrt/sinsched"
	"github.com/ydewit/sinrt/sinstat"
)

func main() {
	configPath := flag.String("config", "", "path to a sinconfig YAML file (defaults built in if omitted)")
	debugAddr := flag.String("debug-addr", "", "if set and scheduler is pool, serve GET /stats (live report as JSON) on this address while the run is in progress")
	flag.Parse()

	cfg := sinconfig.Default()
	if *configPath != "" {
		cfg = sinconfig.Load(*configPath)
	}

	logFile, err := os.Create("sinrun.log")
	if err != nil {
		panic(fmt.Sprintf("sinrun: failed to open log file: %v", err))
	}
	atexit.Register(func() { logFile.Close() })

	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level})))

	fmt.Println("==============================================================================")
	fmt.Printf("SIN RUNTIME — scenario %q\n", cfg.Scenario.Name)
	fmt.Println("==============================================================================")

	build, ok := scenario.Lookup(cfg.Scenario.Name)
	if !ok {
		slog.Error("unknown scenario", "name", cfg.Scenario.Name)
		atexit.Fatalf("sinrun: unknown scenario %q", cfg.Scenario.Name)
	}

	net, rules := build(cfg.Scenario.Input, cfg.Capacities.Cells, cfg.Capacities.Vars, cfg.Capacities.Equations, cfg.Capacities.Rules)
	slog.Info("scenario built", "name", cfg.Scenario.Name, "input", cfg.Scenario.Input)

	start := time.Now()
	var rewrites uint64
	switch cfg.Scheduler {
	case sinconfig.Pool:
		pool := runtime.NewPool(net, rules, cfg.Workers)

		var debugServer *http.Server
		if *debugAddr != "" {
			debugServer = startDebugServer(*debugAddr, func() sinstat.Report {
				return sinstat.NewReport(cfg.Scenario.Name, pool.Progress(), time.Since(start), cfg.Workers)
			})
			atexit.Register(func() { debugServer.Close() })
		}

		rewrites = pool.Run()
	case sinconfig.Akita:
		rewrites = runAkita(net, rules)
	default:
		engine := runtime.New(net, rules)
		engine.Eval()
		rewrites = engine.RewritesCount()
	}
	elapsed := time.Since(start)

	report := sinstat.NewReport(cfg.Scenario.Name, rewrites, elapsed, cfg.Workers)
	fmt.Println(report.Render())
	fmt.Printf("\n%.0f rewrites/sec\n", report.RewritesPerSecond())

	printResult(net)

	slog.Info("run complete", "rewrites", rewrites, "elapsed_ms", elapsed.Milliseconds())
}

// printResult reads the net's boundary variables after evaluation and
// prints whatever residual state is left on them: a resolved cell, or
// an unbound wire, which is a legitimate normal-form outcome rather
// than an error.
func printResult(net *rnet.Net) {
	fmt.Println("\nresult head:")
	for i, v := range net.Head {
		vr := net.Heap.GetVar(v)
		store := vr.Free()
		if cell, ok := store.Get(); ok {
			fmt.Printf("  [%d] %s = %s\n", i, v, cell)
			continue
		}
		fmt.Printf("  [%d] %s (unbound)\n", i, v)
	}
}

// runAkita evaluates net under an akita serial discrete-event engine
// rather than a plain host loop, processing one pending equation per
// simulated cycle through a sinsched.Component.
func runAkita(net *rnet.Net, rules runtime.RuleLookup) uint64 {
	akitaEngine := sim.NewSerialEngine()
	re := runtime.New(net, rules)
	comp := sinsched.NewBuilder().
		WithEngine(akitaEngine).
		WithFreq(1 * sim.GHz).
		Build("SinEngine", re)

	akitaEngine.Run()

	return comp.Rewrites()
}

// startDebugServer launches the optional /stats debug listener in the
// background and returns immediately: it serves a live snapshot for as
// long as the pool-mode run it's watching keeps going, calling snapshot
// fresh on every request rather than capturing one report up front.
// This is a local debugging aid observing one run on one machine, not a
// distribution mechanism.
func startDebugServer(addr string, snapshot func() sinstat.Report) *http.Server {
	r := mux.NewRouter()
	r.HandleFunc("/stats", func(w http.ResponseWriter, req *http.Request) {
		body, err := snapshot().JSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	})

	server := &http.Server{Addr: addr, Handler: r}
	go func() {
		slog.Info("serving debug stats", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("debug server exited", "error", err)
		}
	}()
	return server
}
