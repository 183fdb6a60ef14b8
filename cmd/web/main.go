package main

import (
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/planetbeat/internal/config"
	"github.com/tomz197/planetbeat/internal/metrics"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger, closeLog, err := config.NewLogger("web", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "2222")

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		logger.Fatal("failed to register metrics", "err", err)
	}

	page := renderPage(sshHost, sshPort)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.Handle("/metrics", collector.Handler())

	addr := net.JoinHostPort(host, port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, collector.Middleware(mux)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the connection details into the landing page.
func renderPage(sshHost, sshPort string) string {
	return strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.SSHPort}}", sshPort,
	).Replace(htmlPage)
}
