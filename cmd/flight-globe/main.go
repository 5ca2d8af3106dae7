package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/goforj/godump"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/flight-globe/audio"
	"github.com/lixenwraith/flight-globe/config"
	"github.com/lixenwraith/flight-globe/engine"
	"github.com/lixenwraith/flight-globe/globe"
	"github.com/lixenwraith/flight-globe/log"
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/store"
)

// options are the command-line overrides; empty or zero values leave the config alone
type options struct {
	configPath string
	logLevel   string
	logDir     string
	mode       string
	origin     string
	dest       string
	seed       uint64
	fps        int
	noAudio    bool
	noSession  bool
	dumpConfig bool
}

func parseFlags(args []string) (*options, error) {
	set := flag.NewFlagSet("flight-globe", flag.ContinueOnError)
	o := &options{}
	set.StringVar(&o.configPath, "config", "", "TOML config file")
	set.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	set.StringVar(&o.logDir, "log-dir", "", "Log directory (default: user cache dir)")
	set.StringVar(&o.mode, "mode", "", "Spawn mode: none, random, origin, destination, pair")
	set.StringVar(&o.origin, "origin", "", "Origin IATA code for origin and pair modes")
	set.StringVar(&o.dest, "dest", "", "Destination IATA code for destination and pair modes")
	set.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 picks one")
	set.IntVar(&o.fps, "fps", 0, "Frames per second")
	set.BoolVar(&o.noAudio, "no-audio", false, "Disable the arrival chime")
	set.BoolVar(&o.noSession, "no-session", false, "Neither restore nor save the last view")
	set.BoolVar(&o.dumpConfig, "dump-config", false, "Print the resolved config and exit")
	if err := set.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// apply layers flag overrides onto a copy of cfg
func (o *options) apply(cfg config.Config) config.Config {
	cfg = cfg.Clone()
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logDir != "" {
		cfg.Log.Dir = o.logDir
	}
	if o.mode != "" {
		cfg.Schedule.Mode = o.mode
	}
	if o.origin != "" {
		cfg.Schedule.Origin = o.origin
	}
	if o.dest != "" {
		cfg.Schedule.Dest = o.dest
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.fps != 0 {
		cfg.FPS = o.fps
	}
	if o.noAudio {
		cfg.Audio.Enabled = false
	}
	return cfg
}

// resolveConfig loads the file, applies flags and validates
// A zero seed is replaced by a random one so runs differ unless pinned
func resolveConfig(o *options) (config.Config, error) {
	cfg, err := config.Load(o.configPath, nil)
	if err != nil {
		return config.Config{}, err
	}
	cfg = o.apply(cfg)
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := resolveConfig(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flight-globe: %v\n", err)
		os.Exit(1)
	}
	if o.dumpConfig {
		dumpTo(os.Stdout, cfg)
		return
	}

	logger, err := log.New(cfg.Log.Level, cfg.Log.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flight-globe: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, o, logger); err != nil && !errors.Is(err, engine.ErrSchedulerStopped) && !errors.Is(err, context.Canceled) {
		logger.Error("Exited with error", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "flight-globe: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, o *options, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery: the terminal is reset before the stack reaches stderr
	crash := func(r any) {
		screen.Fini()
		stack := debug.Stack()
		report := logger.WriteCrashReport(r, stack)
		fmt.Fprintf(os.Stderr, "\n\x1b[31mFLIGHT-GLOBE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
		if report != "" {
			fmt.Fprintf(os.Stderr, "Crash report: %s\n", report)
		}
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	// goSafe runs fn in the group with the same crash handling as run itself
	goSafe := func(eg *errgroup.Group, fn func() error) {
		eg.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					crash(r)
				}
			}()
			return fn()
		})
	}

	interval := time.Second / time.Duration(cfg.FPS)
	clock := engine.NewFrameClock(time.Now(), interval)

	sound := audio.NewSoundManager(cfg.Audio, engine.NewMonotonicTimeProvider())
	if err := sound.Initialize(); err != nil {
		logger.Warn("Audio unavailable, continuing without sound", slog.Any("error", err))
	}
	defer sound.Cleanup()

	gc, err := globe.NewContext(globe.Options{
		Config: cfg,
		Screen: screen,
		Clock:  clock,
		Logger: logger,
		Sound:  sound,
	})
	if err != nil {
		return err
	}

	sessions := openSessionStore(o, logger)
	startSchedule(o, restoreSession(sessions, gc, logger), gc, logger)

	ticker := engine.NewRealTicker(interval)
	scheduler := engine.NewClockScheduler(gc, ticker, clock, parameter.InputQueueSize)
	gc.SetController(scheduler)

	eg, ctx := errgroup.WithContext(context.Background())

	// Input poller: tcell delivers events on this goroutine, handling runs on the loop
	goSafe(eg, func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			if !scheduler.Post(func() { gc.HandleEvent(ev) }) {
				select {
				case <-scheduler.Done():
					return nil
				default:
					logger.Debug("Input queue full, event dropped")
				}
			}
		}
	})

	// Signal watcher
	goSafe(eg, func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)
		select {
		case s := <-sig:
			logger.Info("Signal received", slog.String("signal", s.String()))
			scheduler.RequestStop()
		case <-scheduler.Done():
		case <-ctx.Done():
		}
		return nil
	})

	goSafe(eg, func() error {
		defer ticker.Stop()
		err := scheduler.Run(ctx)
		scheduler.RequestStop()
		saveSession(sessions, gc, logger)
		// Unblocks PollEvent in the input goroutine
		screen.Fini()
		return err
	})

	return eg.Wait()
}

// openSessionStore returns nil when sessions are disabled or no cache dir exists
func openSessionStore(o *options, logger *log.Logger) *store.Store {
	if o.noSession {
		return nil
	}
	dir, err := store.DefaultDir()
	if err != nil {
		logger.Warn("No cache dir, session not persisted", slog.Any("error", err))
		return nil
	}
	return store.New(dir)
}

// restoreSession reports whether a saved schedule is now running
func restoreSession(s *store.Store, gc *globe.Context, logger *log.Logger) bool {
	if s == nil {
		return false
	}
	sess, err := s.LoadSession()
	switch {
	case err == nil:
		ok := gc.Restore(sess)
		logger.Info("Session restored", slog.Time("saved_at", sess.SavedAt), slog.String("mode", sess.Mode), slog.Bool("schedule", ok))
		return ok
	case errors.Is(err, fs.ErrNotExist):
	default:
		logger.Warn("Session not restored", slog.Any("error", err))
	}
	return false
}

// startSchedule runs the configured schedule unless a restored one is running
// An explicit -mode wins over the saved schedule
func startSchedule(o *options, restored bool, gc *globe.Context, logger *log.Logger) {
	if restored && o.mode == "" {
		return
	}
	if err := gc.Start(); err != nil {
		logger.Warn("Configured schedule rejected", slog.Any("error", err))
	}
}

func saveSession(s *store.Store, gc *globe.Context, logger *log.Logger) {
	if s == nil {
		return
	}
	if err := s.SaveSession(gc.Snapshot(), time.Now()); err != nil {
		logger.Warn("Session not saved", slog.Any("error", err))
	}
}

// dumpTo prints the resolved config, split out of main for tests
func dumpTo(w io.Writer, cfg config.Config) {
	godump.Fdump(w, cfg)
}
