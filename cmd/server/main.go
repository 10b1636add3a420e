// Command server runs the feedback form HTTP API until SIGINT or SIGTERM.
// With -env it prints the environment variables it reads and exits.
//
// Exit codes: 0 = clean shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Sweetdevil144/feedback-platform/internal/app"
	"github.com/Sweetdevil144/feedback-platform/internal/config"
)

func main() {
	envHelp := flag.Bool("env", false, "print the environment variables and exit")
	flag.Parse()

	if *envHelp {
		usage, err := config.EnvUsage()
		if err != nil {
			log.Fatalf("describe env: %v", err)
		}
		fmt.Println(usage)
		return
	}

	// A local .env is optional; real deployments set the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
