package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/planetbeat/internal/audio"
	"github.com/tomz197/planetbeat/internal/config"
	"github.com/tomz197/planetbeat/internal/game"
	"github.com/tomz197/planetbeat/internal/loop"
	"github.com/tomz197/planetbeat/internal/song"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The game owns the terminal, so logs only go to LOG_FILE.
	logger, closeLog, err := config.NewLogger("planetbeat", io.Discard)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	s, err := loadSong()
	if err != nil {
		return err
	}

	player := audio.NewPlayer(logger, s)
	if err := player.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
	}
	defer player.Cleanup()
	player.SetVolume(config.GetEnvFloat("PLANETBEAT_VOLUME", 0))

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.Options{
		Song:   s,
		Config: game.ConfigFromEnv(),
		Audio:  player,
		Logger: logger,
	})
}

// loadSong reads SONG_FILE, or returns the built-in song when it is unset.
func loadSong() (song.Song, error) {
	path := config.GetEnv("SONG_FILE", "")
	if path == "" {
		return song.Default(), nil
	}
	s, err := song.Load(path)
	if err != nil {
		return song.Song{}, fmt.Errorf("load song: %w", err)
	}
	return s, nil
}
