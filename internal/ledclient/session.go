package ledclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ledlink/internal/shared/logger"
	"ledlink/internal/shared/types"
)

const (
	cmdLEDOff = "0"
	cmdLEDOn  = "1"

	ackLEDOff = "LED OFF ACK"
	ackLEDOn  = "LED ON ACK"
)

const separator = "================================================================================"

// ErrInvalidCommandEncoding reports inbound bytes that are not valid UTF-8 text.
var ErrInvalidCommandEncoding = errors.New("received command is not valid UTF-8")

// Session owns the single connection to the command server and serves the
// command/acknowledgement exchange over it. At most one Session exists per
// process; nothing else touches the connection while it runs.
type Session struct {
	conn       net.Conn
	remoteAddr string
	remotePort int
	bufSize    int
	console    io.Writer
	log        zerolog.Logger
}

// NewSession wraps an established connection. Protocol-visible status lines
// are written to console; pass nil for stdout.
func NewSession(cfg *types.Config, conn net.Conn, console io.Writer) *Session {
	if console == nil {
		console = os.Stdout
	}
	bufSize := cfg.BufferSize
	if bufSize <= 0 {
		bufSize = 1024
	}
	return &Session{
		conn:       conn,
		remoteAddr: cfg.Address,
		remotePort: cfg.Port,
		bufSize:    bufSize,
		console:    console,
		log: logger.WithComponent("session").With().
			Str("session_id", uuid.NewString()).Logger(),
	}
}

// PrintBanner writes the startup banner matching the dev-kit console output.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "TCP Client")
	fmt.Fprintln(w, separator)
}

// Run serves commands until the server closes the connection, the context is
// canceled, or a fatal I/O or decode error occurs. Server-initiated closure
// is a clean stop and returns nil.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.console, "Connected to TCP Server (IP Address: %s Port: %d)\n",
		s.remoteAddr, s.remotePort)
	s.log.Info().
		Str("remote_addr", s.conn.RemoteAddr().String()).
		Msg("session started")

	// Unblock the pending Read on cancellation; the loop translates the
	// resulting deadline error back into ctx.Err().
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	buf := make([]byte, s.bufSize)
	for {
		n, err := s.conn.Read(buf)
		if n > 0 {
			if herr := s.handleCommand(buf[:n]); herr != nil {
				return herr
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info().Msg("session canceled")
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				s.log.Info().Msg("server closed the connection")
				return nil
			}
			return fmt.Errorf("receive failed: %w", err)
		}
	}
}

func (s *Session) handleCommand(data []byte) error {
	fmt.Fprintln(s.console, separator)
	fmt.Fprintln(s.console, "Command from Server:")

	if !utf8.Valid(data) {
		return fmt.Errorf("%w: % x", ErrInvalidCommandEncoding, data)
	}

	var ack string
	switch string(data) {
	case cmdLEDOff:
		fmt.Fprintln(s.console, "LED OFF")
		ack = ackLEDOff
	case cmdLEDOn:
		fmt.Fprintln(s.console, "LED ON")
		ack = ackLEDOn
	default:
		// The firmware only ever sends the two single-byte commands;
		// anything else is ignored without a reply.
		s.log.Debug().Str("payload", string(data)).Msg("ignoring unrecognized command")
		return nil
	}

	if _, err := s.conn.Write([]byte(ack)); err != nil {
		return fmt.Errorf("acknowledgement send failed: %w", err)
	}
	fmt.Fprintln(s.console, "Acknowledgement sent to server")
	return nil
}
