// Command mono is a minimalist bionic reading editor for the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/mono"
	"github.com/iw2rmb/mono/app"
	"github.com/iw2rmb/mono/editor"
	"github.com/iw2rmb/mono/export"
	"github.com/iw2rmb/mono/internal/config"
	"github.com/iw2rmb/mono/internal/health"
	"github.com/iw2rmb/mono/internal/logging"
	"github.com/iw2rmb/mono/prefs"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	dataPath   string
	exportDir  string
	healthAddr string
	ephemeral  bool
}

// apply lets command-line flags win over the config file and environment.
func (o options) apply(cfg *config.Config) {
	if o.dataPath != "" {
		cfg.DataPath = o.dataPath
	}
	if o.exportDir != "" {
		cfg.ExportDir = o.exportDir
	}
	if o.healthAddr != "" {
		cfg.HealthAddr = o.healthAddr
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "mono",
		Short:         "A minimalist bionic reading editor",
		Version:       mono.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEditor(cmd.Context(), opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	f.StringVar(&opts.dataPath, "data", "", "SQLite file holding the document and preferences")
	f.StringVar(&opts.exportDir, "export-dir", "", "directory receiving exported files")
	f.StringVar(&opts.healthAddr, "health-addr", "", "serve the health endpoint on host:port")
	f.BoolVar(&opts.ephemeral, "ephemeral", false, "keep the document in memory only")

	root.AddCommand(newExportCmd(&opts), newVersionCmd())
	return root
}

func newExportCmd(opts *options) *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored document to the export directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*opts)
			if err != nil {
				return err
			}
			defer s.Close()

			st := s.store.Load()
			b := export.Text(st.Text)
			if asHTML {
				if b, err = export.HTML(st.Text, st.Preferences); err != nil {
					return fmt.Errorf("export html: %w", err)
				}
			}
			path, err := export.Write(s.cfg.ExportDir, b)
			if err != nil {
				return err
			}
			s.log.Info("exported document", "path", path, "bytes", len(b.Data))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "export the bionic markup as an HTML page")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), mono.Describe())
		},
	}
}

// session holds what every command needs: resolved config, the log file,
// and the store.
type session struct {
	cfg   *config.Config
	log   *logging.Logger
	store *prefs.Store
	db    *prefs.SQLiteKV
}

func openSession(opts options) (*session, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogConfig())
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	s := &session{cfg: cfg, log: log}

	var kv prefs.KV
	if opts.ephemeral {
		kv = prefs.NewMemoryKV(nil)
	} else {
		db, err := prefs.OpenSQLite(cfg.DataPath)
		if err != nil {
			_ = log.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		s.db = db
		kv = db
	}
	s.store = prefs.NewStore(kv, log.WithComponent("prefs"))
	return s, nil
}

func (s *session) Close() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.log.Warn("close store", "err", err)
		}
	}
	_ = s.log.Close()
}

func runEditor(ctx context.Context, opts options) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	log := s.log.WithComponent("main")
	log.Info("starting", "version", mono.Version(), "data", s.cfg.DataPath, "ephemeral", opts.ephemeral)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.cfg.HealthAddr != "" {
		var checks []health.Check
		if s.db != nil {
			checks = append(checks, s.db.Ping)
		}
		h := health.Mux(health.Handler(health.Service, time.Now), health.Ready(checks...))
		go func() {
			if err := health.Serve(ctx, s.cfg.HealthAddr, h, s.log.WithComponent("health")); err != nil {
				log.Error("health endpoint stopped", "err", err)
			}
		}()
	}

	var clip editor.Clipboard
	if sys := (editor.SystemClipboard{}); sys.Available() {
		clip = sys
	} else {
		log.Warn("system clipboard unavailable")
	}

	model := app.New(app.Config{
		Store:     s.store,
		ExportDir: s.cfg.ExportDir,
		Clipboard: clip,
		Log:       s.log.WithComponent("app"),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	log.Info("exiting")
	return nil
}
