package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/bubbletea"
	"github.com/eranif/lexilla/lipgloss"
)

// ErrEmptyInput is returned when there is nothing to display.
var ErrEmptyInput = errors.New("nothing to display")

// ErrUnknownTheme is returned for theme names other than dark and light.
var ErrUnknownTheme = errors.New("unknown theme")

// App encapsulates the application logic for testing.
type App struct {
	Stdin  io.Reader
	Path   string
	Viewer lexilla.Viewer
}

// Run loads the input and pages it.
func (a *App) Run(ctx context.Context) error {
	text, err := a.readInput()
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return ErrEmptyInput
	}
	return a.Viewer.View(ctx, text)
}

// readInput reads the file argument, or stdin when the argument is missing
// or "-".
func (a *App) readInput() (string, error) {
	if a.Path != "" && a.Path != "-" {
		text, err := os.ReadFile(a.Path)
		if err != nil {
			return "", err
		}
		return string(text), nil
	}

	text, err := io.ReadAll(a.Stdin)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("termview", flag.ExitOnError)
	escape := fs.Bool("escape", false, "Start with escape decoding enabled")
	value := fs.Bool("value", false, "Start with value splitting enabled")
	theme := fs.String("theme", "dark", "Color theme: dark or light")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		// Without a file argument the input must be a pipe
		stat, err := os.Stdin.Stat()
		if err != nil {
			return fmt.Errorf("checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return fmt.Errorf("usage: termview [flags] <file>, or pipe output in")
		}
	}

	title := "stdin"
	if path != "" && path != "-" {
		title = filepath.Base(path)
	}

	opts := []bubbletea.ViewerOption{bubbletea.WithTitle(title)}
	if *escape {
		opts = append(opts, bubbletea.WithEscapeSequences())
	}
	if *value {
		opts = append(opts, bubbletea.WithValueSeparate())
	}
	switch *theme {
	case "", "dark":
	case "light":
		opts = append(opts, bubbletea.WithTheme(lipgloss.LightTheme()))
	default:
		return fmt.Errorf("%w %q", ErrUnknownTheme, *theme)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Stdin:  os.Stdin,
		Path:   path,
		Viewer: bubbletea.NewViewer(opts...),
	}

	return app.Run(ctx)
}
