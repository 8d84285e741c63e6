// Command life simulates a cellular automaton description and prints the
// result, or shows it in the terminal with -t.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"lifeca/internal/app"
)

func main() {
	log.SetFlags(0)
	cfg, args, err := app.ParseArgs("life", os.Args[1:], os.Stderr)
	if err == gnuflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if err := loggo.ConfigureLoggers(cfg.Log); err != nil {
		log.Fatalf("life: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.Run(ctx, cfg, args, os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatalf("life: %v", err)
	}
}
