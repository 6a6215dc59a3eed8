// Package main provides the objectives CLI: catalog inspection, store
// seeding and recorded-session settlement for the dice chess optional
// objective engine.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	objectivescmd "github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/cmd/objectives"
)

func main() {
	cfg, err := objectivescmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[OBJECTIVES] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := objectivescmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("objectives: %v", err)
	}
}
