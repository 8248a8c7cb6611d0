package main

import (
	"context"
	"time"

	"github.com/queuecommander/arena/internal/dispatcher"
	"github.com/queuecommander/arena/internal/handlers"
)

// registerLifecycleHandlers registers system/lifecycle command handlers with the dispatcher
func registerLifecycleHandlers(d *dispatcher.Dispatcher) {
	d.Register(":VERSION:", func(e dispatcher.Event) (any, error) {
		return []string{CurrentVersion, BuildDate}, nil
	}, dispatcher.Described("version and build date"))

	d.Register(":GETDIR:LOG:", func(e dispatcher.Event) (any, error) {
		return LogFilePath, nil
	}, dispatcher.Described("path of the session log file"))

	d.Register(":GETDIR:CONFIG:", func(e dispatcher.Event) (any, error) {
		return configPath(), nil
	}, dispatcher.Described("path of the config file"))

	d.Register(":SESSION:", func(e dispatcher.Event) (any, error) {
		return []string{
			sess.ID(),
			string(sess.Screen()),
			sess.Uptime(e.Timestamp).Round(time.Second).String(),
		}, nil
	}, dispatcher.Described("session id, screen and uptime"))

	// Flush telemetry without ending the session
	d.Register(":SAVE:", func(e dispatcher.Event) (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := SlogManager.Flush(ctx); err != nil {
			Logger.Warn("Failed to flush logs", "error", err)
			return nil, err
		}
		if OTelProvider != nil {
			if err := OTelProvider.Flush(ctx); err != nil {
				Logger.Warn("Failed to flush OTel data", "error", err)
				return nil, err
			}
		}
		return "ok", nil
	}, dispatcher.Logged(), dispatcher.Described("flush logs and telemetry"))
}

// dispatchDemoEvent dispatches an event through the dispatcher for demo/test purposes
func dispatchDemoEvent(command string, args ...string) {
	if eventDispatcher == nil {
		return
	}
	if _, err := eventDispatcher.Dispatch(dispatcher.Event{
		Command:   command,
		Args:      args,
		Timestamp: time.Now(),
	}); err != nil {
		Logger.Warn("Demo command failed", "command", command, "error", err)
	}
}

// populateDemoData enqueues every catalog unit once, blue kingdom first
func populateDemoData() {
	demoStart := time.Now()
	units := gameArena.Catalog().Units()
	for _, u := range units {
		dispatchDemoEvent(handlers.CmdEnqueue, u.ID)
	}
	Logger.Info("Demo data populated.", "troops", len(units), "duration", time.Since(demoStart))
}
