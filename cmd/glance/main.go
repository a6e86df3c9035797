// Command glance keeps a library of text files and prints them one status-bar
// page at a time.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glance"
	"github.com/iw2rmb/glance/config"
	"github.com/iw2rmb/glance/library"
	"github.com/iw2rmb/glance/page"
	"github.com/iw2rmb/glance/reader"
	"github.com/iw2rmb/glance/statusbar"
)

const defaultFollowInterval = 5 * time.Second

const usage = `usage: glance [-config FILE] [-progress] [-v] COMMAND [ARGS]

commands:
  init            write the default config file
  add FILE        add a text file to the library
  list            list books
  rm ID           remove a book
  show ID         print the current page
  next ID         turn to the next page and print it
  prev ID         turn to the previous page and print it
  jump ID LINE    move to LINE (1-based) and print the page
  follow ID       print pages on a timer until the end
  read ID         interactive status bar
  version         print the version
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type app struct {
	cfgPath  string
	cfg      *config.Config
	store    *library.Store
	log      *slog.Logger
	progress bool
	out      io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("glance", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { fmt.Fprint(stderr, usage) }
	cfgPath := flags.String("config", config.DefaultPath(), "config file")
	progress := flags.Bool("progress", false, "append line/total to printed pages")
	verbose := flags.Bool("v", false, "debug logging")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cmd, rest := flags.Arg(0), flags.Args()[1:]
	if cmd == "version" {
		fmt.Fprintln(stdout, glance.Banner())
		return 0
	}

	a, err := newApp(*cfgPath, logger)
	if err != nil {
		fmt.Fprintf(stderr, "glance: %v\n", err)
		return 1
	}
	a.progress = *progress
	a.out = stdout

	if err := a.dispatch(ctx, cmd, rest); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "glance: %v\n\n", err)
			flags.Usage()
			return 2
		}
		fmt.Fprintf(stderr, "glance: %v\n", err)
		return 1
	}
	return 0
}

type usageError string

func (e usageError) Error() string { return string(e) }

func newApp(cfgPath string, logger *slog.Logger) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	store, err := library.Open(cfg.Library(), library.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", cfgPath, "library", store.Path())
	return &app{cfgPath: cfgPath, cfg: cfg, store: store, log: logger}, nil
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	want := map[string]int{
		"init": 0, "list": 0,
		"add": 1, "rm": 1, "show": 1, "next": 1, "prev": 1, "follow": 1, "read": 1,
		"jump": 2,
	}
	n, ok := want[cmd]
	if !ok {
		return usageError(fmt.Sprintf("unknown command %q", cmd))
	}
	if len(args) != n {
		return usageError(fmt.Sprintf("%s takes %d argument(s)", cmd, n))
	}

	switch cmd {
	case "init":
		return a.initConfig()
	case "list":
		return a.list()
	case "add":
		return a.add(args[0])
	case "rm":
		return a.remove(args[0])
	}

	s, err := a.open(args[0])
	if err != nil {
		return err
	}
	switch cmd {
	case "show":
		return a.print(s, s.Page)
	case "next":
		return a.print(s, s.Next)
	case "prev":
		return a.print(s, s.Prev)
	case "jump":
		line, err := strconv.Atoi(args[1])
		if err != nil {
			return usageError(fmt.Sprintf("bad line %q", args[1]))
		}
		return a.print(s, func() (page.Page, error) { return s.Jump(line - 1) })
	case "follow":
		return a.follow(ctx, s)
	default:
		return a.read(ctx, s)
	}
}

func (a *app) initConfig() error {
	if _, err := os.Stat(a.cfgPath); err == nil {
		return fmt.Errorf("%s already exists", a.cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := config.Default().Save(a.cfgPath); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.cfgPath)
	return nil
}

func (a *app) list() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, r := range library.Rows(a.store.Books()) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Label, r.Progress, r.Detail)
	}
	return tw.Flush()
}

func (a *app) add(path string) error {
	b, err := a.store.Add(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%s\n", b.ShortID(), b.Name)
	return nil
}

func (a *app) remove(ref string) error {
	b, err := a.store.Find(ref)
	if err != nil {
		return err
	}
	return a.store.Remove(b.ID)
}

func (a *app) open(ref string) (*reader.Session, error) {
	b, err := a.store.Find(ref)
	if err != nil {
		return nil, err
	}
	return reader.OpenBook(b, a.store, reader.Options{
		Page:    a.cfg.Page(),
		Measure: a.cfg.Measure(),
		Loader:  a.cfg.LoaderOptions(),
		Logger:  a.log,
	})
}

// print writes the page returned by fn. At either end of the book the current
// page is printed instead, so a polling status bar keeps its text.
func (a *app) print(s *reader.Session, fn func() (page.Page, error)) error {
	p, err := fn()
	switch {
	case errors.Is(err, page.ErrAtEnd), errors.Is(err, page.ErrAtStart):
		a.log.Debug("no page to turn to", "book", s.ID(), "err", err)
		if p, err = s.Page(); err != nil {
			return err
		}
	case err != nil:
		return err
	}
	a.writePage(s, p)
	return nil
}

func (a *app) writePage(s *reader.Session, p page.Page) {
	if a.progress {
		fmt.Fprintf(a.out, "%s %s\n", p.Text, s.Progress())
		return
	}
	fmt.Fprintln(a.out, p.Text)
}

func (a *app) follow(ctx context.Context, s *reader.Session) error {
	interval := a.cfg.AutoAdvanceInterval.Duration
	if interval <= 0 {
		interval = defaultFollowInterval
	}
	if p, err := s.Page(); err == nil {
		a.writePage(s, p)
	}
	err := reader.Autoplay(ctx, s, reader.AutoplayOptions{
		Interval:  interval,
		Jitter:    a.cfg.AutoAdvanceJitter.Duration,
		StopAfter: a.cfg.AutoStopDelay.Duration,
		OnPage:    func(p page.Page) { a.writePage(s, p) },
	})
	if errors.Is(err, reader.ErrAutoplayStopped) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type readModel struct {
	bar statusbar.Model
}

func (m readModel) Init() tea.Cmd { return m.bar.Init() }

func (m readModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	return m, cmd
}

func (m readModel) View() string { return m.bar.View() }

func (a *app) read(ctx context.Context, s *reader.Session) error {
	bar := statusbar.New(s, statusbar.Config{
		Style:       statusbar.DefaultStyle(),
		KeyMap:      statusbar.DefaultKeyMap(),
		AutoAdvance: a.cfg.AutoAdvanceInterval.Duration,
		AutoStop:    a.cfg.AutoStopDelay.Duration,
	})
	_, err := tea.NewProgram(readModel{bar: bar}, tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
