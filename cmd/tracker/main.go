package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/database"
	"github.com/akyairhashvil/prep-tracker/internal/tracker"
	"github.com/akyairhashvil/prep-tracker/internal/tui"
	"github.com/akyairhashvil/prep-tracker/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	cfg     config.Config
	plain   bool
	version bool
}

func parseArgs(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	dataDir := fs.String("data-dir", cfg.DataDir, "directory holding the progress database")
	theme := fs.String("theme", cfg.Theme, "colour theme (default, dracula)")
	plain := fs.Bool("plain", false, "print a text summary instead of starting the interface")
	version := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	cfg.DataDir = util.ExpandHome(*dataDir)
	cfg.Theme = *theme
	return options{cfg: cfg, plain: *plain, version: *version}, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts, err := parseArgs(args, cfg)
	if err != nil {
		return err
	}
	if opts.version {
		_, err := fmt.Fprintf(out, "%s %s\n", config.AppName, tui.VersionLabel())
		return err
	}
	if err := os.MkdirAll(opts.cfg.DataDir, 0o755); err != nil {
		return err
	}

	interactive := !opts.plain && isTerminal(out)
	if interactive {
		// The interface owns the screen, so logs go to a file.
		logFile, err := tea.LogToFile(opts.cfg.LogPath(), config.AppName)
		if err != nil {
			return err
		}
		defer logFile.Close()
	}

	db, err := database.Open(ctx, opts.cfg.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot, err := db.Load(ctx)
	util.LogError("load progress", err)
	t := tracker.New(snapshot)

	if !interactive {
		_, err := io.WriteString(out, tui.RenderPlain(t.Snapshot()))
		return err
	}

	t.OnChange(tracker.PersistTo(ctx, db))
	log.Printf("starting on day %d with %d topics completed", t.Day(), len(snapshot.Completed))
	p := tea.NewProgram(tui.NewModel(t, opts.cfg.Theme), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
