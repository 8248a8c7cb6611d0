package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/queuecommander/arena/internal/arena"
	"github.com/queuecommander/arena/internal/audio"
	"github.com/queuecommander/arena/internal/config"
	"github.com/queuecommander/arena/internal/dispatcher"
	"github.com/queuecommander/arena/internal/handlers"
	"github.com/queuecommander/arena/internal/logging"
	"github.com/queuecommander/arena/internal/monitor"
	"github.com/queuecommander/arena/internal/notify"
	intOtel "github.com/queuecommander/arena/internal/otel"
	"github.com/queuecommander/arena/internal/scheduler"
	"github.com/queuecommander/arena/internal/session"
	"github.com/queuecommander/arena/internal/tui"
	"github.com/queuecommander/arena/pkg/console"
)

// BuildDate can be set at build time via ldflags
var (
	CurrentVersion string = "0.1.0"
	BuildDate      string = "unknown"

	AppName string = "queue_commander"
)

// command line
var (
	configDir   = pflag.StringP("config", "c", ".", "directory holding "+config.FileName)
	headless    = pflag.Bool("headless", false, "read commands from stdin instead of running the terminal UI")
	noAudio     = pflag.Bool("no-audio", false, "disable sound cues")
	demo        = pflag.Bool("demo", false, "start with one of every troop in the queue")
	showVersion = pflag.BoolP("version", "v", false, "print the version and exit")
)

// global variables
var (
	SessionStartTime time.Time = time.Now()

	LogFilePath string
	LogFile     *os.File

	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger

	// OTelProvider handles OpenTelemetry
	OTelProvider *intOtel.Provider

	// Services
	sess            *session.Context
	gameArena       *arena.Arena
	feed            *notify.Feed
	soundManager    *audio.SoundManager
	eventDispatcher *dispatcher.Dispatcher
	handlerService  *handlers.Service
	monitorService  *monitor.Service
)

func main() {
	pflag.Parse()
	if *showVersion {
		fmt.Printf("%s %s (%s)\n", AppName, CurrentVersion, BuildDate)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

func run() error {
	// Bootstrap logging until the session log file exists
	SlogManager = logging.NewSlogManager()
	SlogManager.Setup(logging.Options{Console: os.Stderr, Level: "warn"})
	Logger = SlogManager.Logger()

	if err := config.Load(*configDir); err != nil {
		Logger.Warn("Failed to load config, using defaults!", "error", err)
	}

	if err := openLogFile(); err != nil {
		return err
	}
	defer LogFile.Close()

	sess = session.NewContext(SessionStartTime)

	setupOTel()
	setupLogging()
	defer shutdown()

	Logger.Info("Starting up...", "version", CurrentVersion, "build", BuildDate, "session", sess.ID())

	if err := setupServices(); err != nil {
		return err
	}
	defer monitorService.Stop()
	if soundManager != nil {
		defer soundManager.Cleanup()
	}

	if *demo {
		populateDemoData()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		return runConsole(ctx)
	}
	return runTUI(ctx)
}

// openLogFile creates the logs directory and the session log, keeping a
// previous log of the same name as .old
func openLogFile() error {
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("creating logs dir %s: %w", logsDir, err)
	}

	LogFilePath = logging.LogFilePath(logsDir, AppName, SessionStartTime)
	if _, err := os.Stat(LogFilePath); err == nil {
		if err := os.Rename(LogFilePath, LogFilePath+".old"); err != nil {
			Logger.Warn("Failed to rotate old log file", "error", err, "path", LogFilePath)
		}
	}

	var err error
	LogFile, err = os.OpenFile(LogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", LogFilePath, err)
	}
	return nil
}

func setupOTel() {
	otelCfg := config.GetOTelConfig()
	if !otelCfg.Enabled {
		return
	}

	var err error
	OTelProvider, err = intOtel.New(intOtel.Config{
		Enabled:        otelCfg.Enabled,
		ServiceName:    otelCfg.ServiceName,
		ServiceVersion: CurrentVersion,
		SessionID:      sess.ID(),
		BatchTimeout:   otelCfg.BatchTimeout,
		LogWriter:      LogFile,
		Endpoint:       otelCfg.Endpoint,
		Insecure:       otelCfg.Insecure,
		Global:         true,
	})
	if err != nil {
		Logger.Error("Failed to initialize OTel provider", "error", err)
		OTelProvider = nil
	}
}

// setupLogging replaces the bootstrap logger with the session logger. The
// terminal is only written to in headless mode, where the TUI is not using it.
func setupLogging() {
	opts := logging.Options{
		File:    LogFile,
		Level:   config.GetString("logLevel"),
		Context: contextAttrs,
	}
	if *headless {
		opts.Console = os.Stderr
	}

	var graylogErr error
	if gl := config.GetGraylogConfig(); gl.Enabled {
		w, err := logging.NewGraylogWriter(gl.Address, AppName)
		if err != nil {
			graylogErr = err
		} else {
			opts.Graylog = w
		}
	}

	var otelLogProvider *sdklog.LoggerProvider
	if OTelProvider != nil {
		otelLogProvider = OTelProvider.LoggerProvider()
	}
	opts.Provider = otelLogProvider

	SlogManager.Setup(opts)
	Logger = SlogManager.Logger()
	Logger.Info("Logging to file", "path", LogFilePath)
	if graylogErr != nil {
		Logger.Warn("Graylog output disabled", "error", graylogErr)
	}
	if OTelProvider != nil {
		Logger.Info("OTel provider initialized", "endpoint", config.GetOTelConfig().Endpoint)
	}
}

// contextAttrs is attached to every log record
func contextAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)
	if sess != nil {
		attrs = append(attrs,
			slog.String("session", sess.ID()),
			slog.String("screen", string(sess.Screen())),
		)
	}
	if gameArena != nil {
		st := gameArena.Stats()
		attrs = append(attrs,
			slog.Int("queueSize", st.Waiting),
			slog.Int("castleHealth", st.CastleHealth),
		)
	}
	return attrs
}

func setupServices() error {
	var err error

	notifyCfg := config.GetNotifyConfig()
	feed = notify.NewFeed(notify.Config{
		ToastDuration: notifyCfg.ToastDuration,
		History:       notifyCfg.History,
	}, notify.Dependencies{Logger: Logger.With("component", "notify")})

	audioCfg := config.GetAudioConfig()
	if audioCfg.Enabled && !*noAudio {
		soundManager = audio.NewSoundManager(audioCfg.Volume)
		if err := soundManager.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			Logger.Warn("Audio initialization failed", "error", err)
		} else {
			feed.AddListener(soundManager)
		}
	}

	arenaCfg := config.GetArenaConfig()
	gameArena, err = arena.New(arena.Config{
		Battlefield:     arenaCfg.Battlefield,
		CastleHealth:    arenaCfg.CastleHealth,
		DamagePerDeploy: arenaCfg.DamagePerDeploy,
		MarkerLifetime:  arenaCfg.MarkerLifetime,
	}, arena.Dependencies{
		Notifier: feed,
		Clock:    scheduler.RealClock{},
		Logger:   Logger.With("component", "arena"),
	})
	if err != nil {
		return fmt.Errorf("creating arena: %w", err)
	}

	commandTrace := logging.NewCommandTrace(LogFile, config.GetString("logLevel"))
	eventDispatcher, err = dispatcher.New(logging.NewDispatcherLogger(commandTrace))
	if err != nil {
		return fmt.Errorf("creating dispatcher: %w", err)
	}

	monCfg := config.GetMonitorConfig()
	monitorService = monitor.NewService(monitor.Dependencies{
		Arena:      gameArena,
		Session:    sess,
		Logger:     Logger.With("component", "monitor"),
		StatusFile: monCfg.StatusFile,
	})

	registerLifecycleHandlers(eventDispatcher)
	handlerService = handlers.NewService(handlers.Dependencies{
		Arena:  gameArena,
		Status: monitorService,
		Logger: Logger.With("component", "handlers"),
	})
	handlerService.RegisterHandlers(eventDispatcher)
	Logger.Info("Dispatcher initialized", "commands", len(eventDispatcher.Commands()))

	if err := monitorService.Start(monCfg.Interval); err != nil {
		return fmt.Errorf("starting monitor: %w", err)
	}
	return nil
}

func runTUI(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	app, err := tui.New(tui.Dependencies{
		Screen:     screen,
		Arena:      gameArena,
		Dispatcher: eventDispatcher,
		Feed:       feed,
		Session:    sess,
		Clock:      scheduler.RealClock{},
		Logger:     Logger.With("component", "tui"),
	})
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

func runConsole(ctx context.Context) error {
	sess.SetScreen(session.ScreenArena)

	c, err := console.New(console.Dependencies{
		Dispatcher: eventDispatcher,
		In:         os.Stdin,
		Out:        os.Stdout,
		Logger:     Logger.With("component", "console"),
	})
	if err != nil {
		return err
	}
	Logger.Info("Console ready", "help", "send :HELP: for the command list")
	return c.Run(ctx)
}

// shutdown flushes buffered logs and telemetry
func shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	Logger.Info("Shutting down", "uptime", sess.Uptime(time.Now()).Round(time.Second).String())
	if err := SlogManager.Flush(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "flushing logs: %v\n", err)
	}
	if OTelProvider != nil {
		if err := OTelProvider.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutting down telemetry: %v\n", err)
		}
	}
}

// configPath is the config file the session was started with
func configPath() string {
	return filepath.Join(*configDir, config.FileName)
}
