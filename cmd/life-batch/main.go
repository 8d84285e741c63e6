// Command life-batch simulates many descriptions concurrently and prints a
// YAML summary of each, in the order given.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"lifeca/internal/app"
)

func main() {
	log.SetFlags(0)
	var cfg app.BatchConfig
	var logSpec string
	fs := gnuflag.NewFlagSet("life-batch", gnuflag.ExitOnError)
	fs.IntVar(&cfg.Generations, "g", 100, "generations to simulate per description")
	fs.IntVar(&cfg.Generations, "generations", 100, "")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "number of descriptions simulated at once")
	fs.StringVar(&logSpec, "log", "<root>=WARNING", "logging configuration")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: life-batch [flags] file...\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(true, os.Args[1:])
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	if cfg.Generations < 0 {
		log.Fatalf("life-batch: number of generations must not be negative, got %d", cfg.Generations)
	}
	if err := loggo.ConfigureLoggers(logSpec); err != nil {
		log.Fatalf("life-batch: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.RunBatch(ctx, cfg, fs.Args(), os.Stdout); err != nil {
		stop()
		log.Fatalf("life-batch: %v", err)
	}
}
