// squad-tactics-server hosts one mission per SSH session. Build:
//
//	go build -o squad-tactics-server ./cmd/server
//
// Usage:
//
//	./squad-tactics-server [--config tactics.yaml]
//
// Connect:
//
//	ssh -t -p 2222 commander@localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"io"
	mrand "math/rand"
	"os"
	"sync"
	"unicode"
	"unicode/utf8"

	"squad-tactics/internal/archive"
	"squad-tactics/internal/config"
	"squad-tactics/internal/game"
	"squad-tactics/internal/logging"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/scenario"
	internalssh "squad-tactics/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/rs/zerolog"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes caps commander names taken from the SSH user.
const maxNameBytes = 16

// allowedTerms are the TERM values handed to terminfo; anything else
// falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

func main() {
	cfgPath := flag.String("config", "", "Path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	var sinks []io.Writer
	if cfg.Graylog != "" {
		gw, err := logging.Graylog(cfg.Graylog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer gw.Close()
		sinks = append(sinks, gw)
	}
	logger, err := logging.Tee(os.Stderr, cfg.LogLevel, sinks...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	r, err := cfg.Rules()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid rules")
	}

	var store *archive.Store
	if cfg.Archive.Enabled {
		store, err = archive.Open(cfg.Archive.Path, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("open archive")
		}
		defer store.Close()
	}

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("host key")
	}

	h := &host{cfg: cfg, rules: r, store: store, log: logger}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; the SSH user only names the commander.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info().Int("port", cfg.Server.Port).Msg("squad-tactics SSH server listening")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// host runs an independent mission for every session.
type host struct {
	cfg   config.Config
	rules rules.Rules
	store *archive.Store
	log   zerolog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	commander := sanitizeName(s.User())
	if commander == "" {
		commander = "Commander"
	}
	seed := h.cfg.MissionSeed()
	log := h.log.With().Str("commander", commander).Int64("seed", seed).Logger()

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", internalssh.Term(s.Environ(), allowedTerms))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	next, err := scenario.Source(h.cfg.Scenario, h.rules, mrand.New(mrand.NewSource(seed)), log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Mission setup failed: %v\n", err)
		return
	}

	log.Info().Msg("session started")
	g := game.NewWithScreen(screen, next, game.Options{
		Commander: commander,
		Seed:      seed,
		Archive:   h.store,
		Log:       log,
	})
	if err := g.Run(); err != nil {
		log.Error().Err(err).Msg("session ended with error")
		return
	}
	log.Info().Msg("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// sanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log zerolog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info().Str("path", path).Msg("loaded host key")
			return signer, nil
		}
	}

	log.Info().Str("path", path).Msg("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "squad-tactics server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Warn().Err(err).Msg("could not persist host key")
		}
	}
	return signer, nil
}
