package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shu-go/gli/v2"
	"github.com/shu-go/nmfmt"
)

// Version is app version
var Version string

func init() {
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102")
	}
}

const appName = "vvpin"

type globalCmd struct {
	Interval time.Duration `cli:"interval,i=DURATION" default:"100ms" help:"how often pinned windows are put back on top"`
	Toggle   string        `cli:"toggle=HOTKEY" default:"ctrl+alt+t" help:"pin or un-pin the current window"`
	Exit     string        `cli:"exit=HOTKEY" default:"ctrl+alt+q" help:"un-pin everything and quit"`
	Retain   bool          `cli:"retain" help:"keep closed windows in the pinned set instead of dropping them"`
	Debug    bool
}

func (c globalCmd) Run(args []string) {
	if err := checkDependencies(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: required component missing (%v)\n", appName, err)
		fmt.Fprintln(os.Stderr, "Run it on Windows with user32.dll and shell32.dll installed.")
		os.Exit(1)
	}

	bindings, err := c.bindings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}

	if err := c.run(bindings); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func (c globalCmd) bindings() ([]hotkeyBinding, error) {
	if c.Interval <= 0 {
		return nil, fmt.Errorf("--interval must be positive, got %v", c.Interval)
	}

	toggle, err := parseHotkey(c.Toggle)
	if err != nil {
		return nil, fmt.Errorf("--toggle: %w", err)
	}
	exit, err := parseHotkey(c.Exit)
	if err != nil {
		return nil, fmt.Errorf("--exit: %w", err)
	}
	if toggle.Mods == exit.Mods && toggle.Key == exit.Key {
		return nil, errors.New("--toggle and --exit must differ")
	}

	return []hotkeyBinding{
		{key: toggle, ev: toggleRequested},
		{key: exit, ev: exitRequested},
	}, nil
}

func (c globalCmd) run(bindings []hotkeyBinding) error {
	log := newLogger(c.Debug)

	pid, err := otherInstance()
	if err != nil {
		log.debugf("instance check: $err", nmfmt.M{"err": err})
	} else if pid != 0 {
		return fmt.Errorf("already running (pid %d)", pid)
	}

	p := newPinner(appName, newWindowAPI(), log)
	p.retain = c.Retain

	d := newDispatcher(log)
	d.Handle(toggleRequested, p.OnToggleRequested)
	d.Handle(exitRequested, p.OnExitRequested)
	d.Handle(statusRequested, p.OnStatusRequested)

	p.Start(context.Background(), c.Interval)

	t, err := startTray(tooltipText(appName, p.Status()), d, log)
	if err != nil {
		log.printf("tray icon creation failed: $err", nmfmt.M{"err": err})
	} else {
		p.SetSink(t)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-signalChan
		d.Dispatch(exitRequested)
	}()

	log.printf("pin/un-pin: $toggle, quit: $exit", nmfmt.M{
		"toggle": bindings[0].key,
		"exit":   bindings[1].key,
	})

	if err := runHotkeys(bindings, d); err != nil {
		p.Shutdown()
		return err
	}

	p.OnExitRequested()
	return nil
}

func main() {
	app := gli.NewWith(&globalCmd{})
	app.Name = appName
	app.Desc = "keep the windows you choose on top"
	app.Version = Version
	app.Usage = `vvpin [--toggle ctrl+alt+t] [--exit ctrl+alt+q] [--interval 100ms] [--retain]`
	app.Copyright = "(C) 2019 Shuhei Kubota"
	app.Run(os.Args)
}
