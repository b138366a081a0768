// ledserver is a host-side stand-in for the dev-kit firmware: it accepts one
// LED client at a time and sends a toggle command each time a line is read
// from stdin, then waits for the client's acknowledgement.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"ledlink/internal/shared/config"
	"ledlink/internal/shared/logger"
	"ledlink/internal/shared/types"
)

func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	flag.Parse()

	cfg := types.DefaultConfig()
	if err := config.Load(cfg, filepath.Join(*configDir, "ledlink.ini")); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal().Err(err).Msgf("Failed to listen on %s", addr)
	}
	logger.Info().Str("addr", addr).Msgf("Waiting for the LED client to connect")

	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Error().Err(err).Msgf("Accept failed")
			continue
		}
		logger.Info().Str("client", conn.RemoteAddr().String()).Msgf("Client connected")
		serve(conn)
	}
}

// serve drives one client until it disconnects. The firmware services a
// single connection, so concurrent clients simply wait in the accept queue.
func serve(conn net.Conn) {
	defer conn.Close()

	ledOn := false
	ack := make([]byte, 64)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Press ENTER to toggle the LED")
	for scanner.Scan() {
		ledOn = !ledOn
		cmd := "0"
		if ledOn {
			cmd = "1"
		}
		if _, err := conn.Write([]byte(cmd)); err != nil {
			logger.Error().Err(err).Msgf("Failed to send command, dropping client")
			return
		}
		n, err := conn.Read(ack)
		if err != nil {
			logger.Error().Err(err).Msgf("Client went away before acknowledging")
			return
		}
		fmt.Printf("Acknowledgement from client: %s\n", ack[:n])
	}
}
