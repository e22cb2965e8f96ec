package fibs

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/bkgmgo/bkgm/pkg/bkgm"
)

// Server implements a small TCP listener speaking the FIBS board:
// wire format: a client sends a "board:..." line (with dice already
// rolled) and gets back the position IDs reachable from it, one per
// line, terminated by a blank line.
type Server struct {
	listener    net.Listener
	mu          sync.Mutex
	running     bool
	options     ServerOptions
	numCheckers uint8
}

// ServerOptions configures the FIBS server.
type ServerOptions struct {
	Port          int
	PromptEnabled bool
}

// DefaultServerOptions returns sensible defaults.
func DefaultServerOptions() ServerOptions {
	return ServerOptions{Port: 1234, PromptEnabled: true}
}

// NewServer creates a new FIBS board server. numCheckers is the per-side
// checker count of the variant being served (15 for standard backgammon).
func NewServer(numCheckers uint8, opts ServerOptions) *Server {
	return &Server{numCheckers: numCheckers, options: opts}
}

// Start begins listening for connections.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("fibs: server already running")
	}

	addr := fmt.Sprintf(":%d", s.options.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("fibs: failed to listen on %s: %w", addr, err)
	}

	s.listener = listener
	s.running = true

	go s.acceptLoop()
	return nil
}

// Stop stops the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			running := s.running
			s.mu.Unlock()
			if !running {
				return
			}
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	if s.options.PromptEnabled {
		conn.Write([]byte("> "))
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				// Log error
			}
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		response := s.processCommand(line)
		conn.Write([]byte(response))

		if s.options.PromptEnabled {
			conn.Write([]byte("> "))
		}

		if strings.ToLower(line) == "exit" || strings.ToLower(line) == "quit" {
			return
		}
	}
}

func (s *Server) processCommand(cmd string) string {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return "Error: empty command\n"
	}

	switch strings.ToLower(parts[0]) {
	case "version":
		return "bkgmfibs 0.1.0\n"
	case "help":
		return "Available commands:\n  version           - show version\n  help              - show this help\n  board:...         - list reachable position IDs for a board\n  exit              - close connection\n"
	case "exit", "quit":
		return "Goodbye\n"
	default:
		if strings.HasPrefix(cmd, "board:") {
			return s.handleBoard(cmd)
		}
		return fmt.Sprintf("Error: unknown command %q\n", parts[0])
	}
}

func (s *Server) handleBoard(cmd string) string {
	board, err := ParseBoard(cmd)
	if err != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}

	p, err := board.ToPosition(s.numCheckers)
	if err != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}

	if board.Dice[0] == 0 || board.Dice[1] == 0 {
		return "Error: no dice rolled\n"
	}
	dice, err := bkgm.NewDice(board.Dice[0], board.Dice[1])
	if err != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}

	positions := p.PossiblePositions(dice)
	if len(positions) == 0 {
		return "cannot move\n\n"
	}

	var b strings.Builder
	for _, np := range positions {
		b.WriteString(np.PositionID())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
