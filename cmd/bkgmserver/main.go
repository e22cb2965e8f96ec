// Command bkgmserver runs the bkgm position/move HTTP and WebSocket API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bkgmgo/bkgm/pkg/api"
)

const version = "0.1.0"

func main() {
	host := flag.String("host", "localhost", "Host to bind to (use 0.0.0.0 for all interfaces)")
	port := flag.Int("port", 8080, "Port to listen on")
	maxWorkers := flag.Int("max-workers", 100, "Max concurrent requests")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("bkgmserver v%s\n", version)
		os.Exit(0)
	}

	log.Printf("bkgmserver v%s", version)

	config := api.ServerConfig{
		Host:         *host,
		Port:         *port,
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
		IdleTimeout:  60 * time.Second,
		MaxWorkers:   *maxWorkers,
	}

	server := api.NewServer(config, version)
	if err := server.ListenAndServeWithGracefulShutdown(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
