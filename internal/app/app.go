// Package app wires the terminal, input decoder, layout, and agent
// subsystems into the editor's event loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scribeterm/scribe/internal/agent"
	"github.com/scribeterm/scribe/internal/config"
	"github.com/scribeterm/scribe/internal/input"
	"github.com/scribeterm/scribe/internal/input/keymap"
	"github.com/scribeterm/scribe/internal/layout"
	"github.com/scribeterm/scribe/internal/term"
	"github.com/scribeterm/scribe/internal/theme"
	"github.com/scribeterm/scribe/internal/tool"
)

// ErrQuit signals a user-requested shutdown. Run returns it so main
// can tell a clean exit from a failure.
var ErrQuit = errors.New("quit requested")

// Focus identifies the pane receiving keyboard input.
type Focus int

const (
	FocusBrowser Focus = iota
	FocusEditor
	FocusPreview
)

// Options configure application startup.
type Options struct {
	ConfigPath string
	Workspace  string
	LogLevel   string
	Files      []string
}

// App is the running editor.
type App struct {
	cfg    config.Config
	logger *Logger
	theme  *theme.Theme
	keys   *keymap.Keymap

	terminal *term.Terminal
	reader   *input.Reader

	tools  *tool.Registry
	agents []agent.Definition

	cfgWatcher *config.Watcher

	width  uint16
	height uint16
	focus  Focus
	help   bool
	quit   bool
}

// New builds the application from options. The terminal is not
// touched until Run.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, err := NewFileLogger(cfg.LogFile, ParseLogLevel(cfg.LogLevel))
	if err != nil {
		return nil, err
	}

	workspace := opts.Workspace
	if workspace == "" {
		workspace = "."
	}
	tools, err := tool.Builtins(workspace)
	if err != nil {
		return nil, err
	}

	agents, err := agent.LoadDir(cfg.AgentDir)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		logger:   logger,
		theme:    theme.Default(),
		keys:     keymap.Default(),
		terminal: term.New(),
		tools:    tools,
		agents:   agents,
		focus:    FocusEditor,
	}
	a.reader = input.NewReader(a.terminal.Input())

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, a.reloadConfig)
		if err != nil {
			logger.Warn("config watch disabled: %v", err)
		} else {
			a.cfgWatcher = w
		}
	}

	logger.Info("started with %d agents, %d tools", len(agents), tools.Len())
	return a, nil
}

// reloadConfig applies a fresh config from the file watcher. Only
// settings that are safe to change live are picked up.
func (a *App) reloadConfig(cfg config.Config) {
	a.logger.SetLevel(ParseLogLevel(cfg.LogLevel))
	a.logger.Info("config reloaded")
}

// Run enters raw mode and drives the event loop until quit.
func (a *App) Run() error {
	if err := a.terminal.EnterRaw(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer a.terminal.Restore()

	out := a.terminal.Output()
	fmt.Fprint(out, term.EnterAltScreen, term.HideCursor, term.EnablePaste)
	if a.cfg.Mouse {
		fmt.Fprint(out, term.EnableMouse)
	}
	defer func() {
		if a.cfg.Mouse {
			fmt.Fprint(out, term.DisableMouse)
		}
		fmt.Fprint(out, term.DisablePaste, term.ShowCursor, term.ExitAltScreen)
	}()

	a.width, a.height = a.terminal.Size()

	events := make(chan input.Event)
	go func() {
		for {
			events <- a.reader.Poll()
		}
	}()

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	a.render()
	for !a.quit {
		select {
		case ev := <-events:
			a.handle(ev)
		case <-winch:
			w, h := a.terminal.Size()
			a.handle(input.ResizeEvent(w, h))
		}
		a.render()
	}

	if a.cfgWatcher != nil {
		a.cfgWatcher.Close()
	}
	a.logger.Info("shutting down")
	return ErrQuit
}

func (a *App) handle(ev input.Event) {
	switch ev.Kind {
	case input.KindKey:
		action, ok := a.keys.FindAction(ev.Key)
		if !ok {
			a.logger.Debug("unbound key %s", ev.Key)
			return
		}
		a.apply(action)
	case input.KindMouse:
		a.logger.Debug("mouse %s", ev.Mouse)
	case input.KindResize:
		a.width, a.height = ev.Width, ev.Height
		a.logger.Debug("resize to %dx%d", ev.Width, ev.Height)
	case input.KindPaste:
		a.logger.Debug("paste of %d bytes", len(ev.Paste))
	case input.KindNone:
	}
}

// apply executes a keymap action.
func (a *App) apply(action string) {
	switch action {
	case "app.quit":
		a.quit = true
	case "help.toggle":
		a.help = !a.help
	case "overlay.close":
		a.help = false
	case "browser.toggle":
		a.toggleFocus(FocusBrowser)
	case "preview.toggle":
		a.toggleFocus(FocusPreview)
	case "focus.next":
		a.focus = (a.focus + 1) % 3
	case "focus.browser":
		a.focus = FocusBrowser
	case "focus.editor":
		a.focus = FocusEditor
	case "focus.preview":
		a.focus = FocusPreview
	case "agent.prompt":
		a.runAgent()
	default:
		a.logger.Debug("action %s not yet handled", action)
	}
}

// toggleFocus moves focus to pane, or back to the editor when pane
// already has it.
func (a *App) toggleFocus(pane Focus) {
	if a.focus == pane {
		a.focus = FocusEditor
	} else {
		a.focus = pane
	}
}

// runAgent fires the configured agent with the workspace listing as
// context. Errors surface in the log, never on the terminal.
func (a *App) runAgent() {
	if len(a.agents) == 0 {
		a.logger.Warn("no agents defined in %s", a.cfg.AgentDir)
		return
	}
	def := a.agents[0]
	if def.Provider == "" {
		def.Provider = a.cfg.Provider
	}
	if def.Model == "" {
		def.Model = a.cfg.Model
	}

	provider, err := agent.NewProvider(def.Provider)
	if err != nil {
		a.logger.Error("agent %s: %v", def.Name, err)
		return
	}

	listing, err := a.tools.Invoke(context.Background(), "list_dir", "{}")
	if err != nil {
		a.logger.Error("listing workspace: %v", err)
		return
	}

	sess := agent.NewSession(def, provider)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	reply, err := sess.Ask(ctx, "Summarize this workspace.", map[string]string{
		"workspace": listing,
	})
	if err != nil {
		a.logger.Error("agent %s: %v", def.Name, err)
		return
	}
	a.logger.Info("agent %s session %s replied with %d bytes", def.Name, sess.ID, len(reply))
}

// Shutdown releases terminal state. Safe to call more than once.
func (a *App) Shutdown() {
	a.terminal.Restore()
}

// Layout computes the current pane arrangement.
func (a *App) Layout() layout.EditorPanes {
	return layout.EditorLayout(layout.NewRect(0, 0, a.width, a.height))
}
