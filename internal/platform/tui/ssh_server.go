package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/metrics"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Context keys set by the logging middleware and read by the tea handler.
type contextKey string

const (
	sessionIDKey contextKey = "snake-session-id"
	gameKey      contextKey = "snake-game"
)

// SSHServer serves one isolated snake game per SSH session.
type SSHServer struct {
	cfg     config.Config
	server  *ssh.Server
	store   *storage.Store
	metrics *metrics.Collector
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. store and collector may be nil.
func NewSSHServer(cfg config.Config, store *storage.Store, collector *metrics.Collector, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		cfg:     cfg,
		store:   store,
		metrics: collector,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := config.ExpandHome(cfg.SSH.HostKey)
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.SSH.IdleTimeout()),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// slotName picks the save slot for an SSH user.
func slotName(user string) string {
	if user == "" {
		return "anonymous"
	}
	return "ssh:" + user
}

// teaHandler creates a game and Bubble Tea model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sess.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	sessionID, _ := sess.Context().Value(sessionIDKey).(string)
	opts := snake.GameOptions{
		Logger:     s.logger.With("session", sessionID),
		Metrics:    s.metrics,
		BoardSize:  s.cfg.BoardSize,
		Difficulty: s.cfg.Difficulty,
		DoubleTap:  s.cfg.DoubleTap(),
		Seed:       time.Now().UnixNano(),
	}
	if s.store != nil {
		opts.Saver = s.store.Slot(slotName(sess.User()))
	}
	game := snake.NewGame(opts)
	sess.Context().SetValue(gameKey, game)

	return NewModel(game, s.cfg.FPS), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionMiddleware tags each session with an ID, logs it, counts it, and
// saves a game left running when the client disconnects.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey, id)

		s.metrics.SessionStarted()
		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)

		next(sess)

		if game, ok := sess.Context().Value(gameKey).(*snake.Game); ok {
			game.Pause()
		}
		s.metrics.SessionEnded()
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server, and the metrics endpoint when one
// is configured, and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := s.cfg.SSH.MetricsAddress; addr != "" {
		go func() {
			if err := s.metrics.Serve(ctx, addr, s.logger); err != nil {
				s.logger.Error("metrics server error", "error", err)
			}
		}()
	}

	s.logger.Info("starting SSH server", "address", s.cfg.SSH.Address)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.cfg.SSH.Address
}
