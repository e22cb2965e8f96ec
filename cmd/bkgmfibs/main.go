// Command bkgmfibs runs a TCP server speaking the FIBS board: wire
// format, listing the position IDs reachable from a submitted board.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bkgmgo/bkgm/pkg/fibs"
)

const version = "0.1.0"

func main() {
	port := flag.Int("port", 1234, "TCP port to listen on")
	numCheckers := flag.Int("checkers", 15, "Checkers per side (15 for standard backgammon)")
	noPrompt := flag.Bool("no-prompt", false, "Disable the '> ' prompt after each response")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("bkgmfibs v%s\n", version)
		os.Exit(0)
	}

	opts := fibs.DefaultServerOptions()
	opts.Port = *port
	opts.PromptEnabled = !*noPrompt

	server := fibs.NewServer(uint8(*numCheckers), opts)
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Printf("bkgmfibs v%s listening on :%d", version, *port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := server.Stop(); err != nil {
		log.Fatalf("Error stopping server: %v", err)
	}
}
