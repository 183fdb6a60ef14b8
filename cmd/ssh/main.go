package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/planetbeat/internal/config"
	"github.com/tomz197/planetbeat/internal/game"
	"github.com/tomz197/planetbeat/internal/loop"
	"github.com/tomz197/planetbeat/internal/metrics"
	"github.com/tomz197/planetbeat/internal/song"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownGrace      = 15 * time.Second
)

// server holds what every session shares. Each session still plays its own
// independent game.
type server struct {
	logger   *log.Logger
	sessions *loop.Registry
	metrics  *metrics.Collector
	song     song.Song
	cfg      game.Config
}

func main() {
	logger, closeLog, err := config.NewLogger("ssh", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	metricsAddr := config.GetEnv("METRICS_ADDR", "")
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "metricsAddr", metricsAddr)

	s := song.Default()
	if path := config.GetEnv("SONG_FILE", ""); path != "" {
		if s, err = song.Load(path); err != nil {
			logger.Fatal("failed to load song", "path", path, "err", err)
		}
	}

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		logger.Fatal("failed to register metrics", "err", err)
	}

	srv := &server{
		logger:   logger,
		sessions: loop.NewRegistry(),
		metrics:  collector,
		song:     s,
		cfg:      game.ConfigFromEnv(),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	sshServer, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	var metricsServer *http.Server
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		metricsServer = &http.Server{Addr: metricsAddr, Handler: collector.Middleware(mux)}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "err", err)
			}
		}()
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Notify players and wait for them to disconnect
	logger.Info("Notifying connected players about shutdown...", "sessions", srv.sessions.Len())
	srv.sessions.Shutdown(shutdownGrace)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if metricsServer != nil {
		_ = metricsServer.Shutdown(ctx)
	}
	if err := sshServer.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware handles SSH sessions and runs one game per session.
func (srv *server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := srv.logger.With("user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		handle := srv.sessions.Register(sess.User())
		srv.metrics.SessionStarted()
		defer func() {
			srv.sessions.Unregister(handle.ID)
			srv.metrics.SessionEnded()
		}()

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		reader := bufio.NewReader(sess)
		err := loop.Run(reader, sess, loop.Options{
			TermSizeFunc:   sizeTracker.getSize,
			Song:           srv.song,
			Config:         srv.cfg,
			Observer:       srv.metrics,
			Logger:         logger,
			Events:         handle.Events,
			DisconnectIdle: true,
		})
		if err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}
