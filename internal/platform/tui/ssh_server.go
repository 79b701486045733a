package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
	"github.com/vovakirdan/tui-slide/internal/transport/websocket"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.slide/host_key.
	HostKeyPath string

	// DBPath is the path to the solves database.
	DBPath string

	// ConfigPath is passed to every game; empty uses the default search path.
	ConfigPath string

	// WatchAddress enables the websocket spectator feed when non-empty (e.g., ":8080").
	WatchAddress string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.slide/slide.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server and the optional spectator feed.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	hub       *websocket.Hub
	watch     *http.Server
	stopWatch context.CancelFunc
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger writes timestamped lines to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "slide-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	if cfg.WatchAddress != "" {
		srv.hub = websocket.NewHub(logger.WithPrefix("slide-watch"))
		srv.watch = &http.Server{
			Addr:              cfg.WatchAddress,
			Handler:           srv.hub.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".slide", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(SessionDeps{
		Store:      s.store,
		Hub:        s.hub,
		Logger:     s.logger,
		ConfigPath: s.config.ConfigPath,
	}, cfg, sshSession.User())

	// Dropped connections stop the program without another message.
	go func() {
		<-sshSession.Context().Done()
		model.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the servers and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	if s.hub != nil {
		ctx, cancel := context.WithCancel(context.Background())
		s.stopWatch = cancel
		go s.hub.Run(ctx)

		s.logger.Info("starting spectator feed", "address", s.config.WatchAddress)
		go func() {
			if err := s.watch.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("watch server error", "error", err)
			}
		}()
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the servers and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if s.watch != nil {
		errs = append(errs, s.watch.Shutdown(ctx))
	}
	if s.stopWatch != nil {
		s.stopWatch()
	}
	errs = append(errs, s.server.Shutdown(ctx))
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}

	return errors.Join(errs...)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionDeps are the shared services a session model uses.
type SessionDeps struct {
	Store      *storage.Store
	Hub        *websocket.Hub // nil disables spectating
	Logger     *log.Logger
	ConfigPath string
}

// sessionScreen identifies which sub-model is active.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	deps     SessionDeps
	config   core.RuntimeConfig
	username string
	screen   sessionScreen

	menu      MenuModel
	scores    ScoreboardModel
	gameModel *GameModel
	sessionID string // spectator ID of the running game
	watched   *spectated
	quitting  bool
}

// spectated tracks the spectator session opened for the running game.
// Every copy of a SessionModel shares it.
type spectated struct {
	hub *websocket.Hub
	mu  sync.Mutex
	id  string
}

func (s *spectated) open(info websocket.SessionInfo) {
	if s.hub == nil {
		return
	}
	s.mu.Lock()
	s.id = info.ID
	s.mu.Unlock()
	s.hub.Open(info)
}

func (s *spectated) close() {
	if s.hub == nil {
		return
	}
	s.mu.Lock()
	id := s.id
	s.id = ""
	s.mu.Unlock()
	if id != "" {
		s.hub.Close(id)
	}
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig, username string) SessionModel {
	if deps.Logger == nil {
		deps.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "slide-ssh"})
	}
	return SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(deps.Store, cfg),
		watched:  &spectated{hub: deps.Hub},
	}
}

// Close ends the spectator session of a running game, if any.
// It is safe to call from any goroutine and more than once.
func (m SessionModel) Close() {
	m.watched.close()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
// The menu quits its own program on every exit; the session intercepts that.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	res := m.menu.result()
	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case res.WantsScoreboard:
		m.scores = NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case res.GameID != "":
		return m.startGame(res)
	}

	return m, cmd
}

// startGame creates the chosen game and hands the screen to it.
func (m SessionModel) startGame(res MenuResult) (tea.Model, tea.Cmd) {
	game, err := registry.Create(res.GameID)
	if err != nil {
		m.deps.Logger.Error("cannot create game", "game", res.GameID, "err", err)
		m.menu = NewMenuModel(m.deps.Store, m.config)
		return m, nil
	}
	if c, ok := game.(registry.Configurable); ok {
		c.SetConfigPath(m.deps.ConfigPath)
		if err := c.SetDifficulty(res.Difficulty); err != nil {
			m.deps.Logger.Warn("ignoring difficulty", "err", err)
		}
	}

	m.sessionID = fmt.Sprintf("%s-%d", m.username, time.Now().UnixNano())
	opts := GameOptions{
		Player:   m.username,
		Logger:   m.deps.Logger.With("session", m.sessionID),
		Embedded: true,
	}
	if m.deps.Hub != nil {
		opts.Observers = append(opts.Observers, m.deps.Hub.Observer(m.sessionID))
		m.watched.open(websocket.SessionInfo{ID: m.sessionID, Game: game.ID(), Player: m.username})
	}

	gameModel := NewGameModel(game, m.deps.Store, m.config, opts)
	m.gameModel = &gameModel
	m.screen = screenGame

	return m, m.gameModel.Init()
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.endGame()
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.endGame()
		return m.backToMenu()
	}

	return m, cmd
}

// endGame tells spectators the running game is over.
func (m *SessionModel) endGame() {
	m.watched.close()
	m.gameModel = nil
	m.sessionID = ""
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.deps.Store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}
