package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Mavwarf/onenote/internal/config"
	"github.com/Mavwarf/onenote/internal/desktop"
	"github.com/Mavwarf/onenote/internal/icon"
	"github.com/Mavwarf/onenote/internal/paths"
	"github.com/Mavwarf/onenote/internal/prefs"
	"github.com/Mavwarf/onenote/internal/shell"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// uniqueID identifies the single-instance lock.
const uniqueID = "com.patrikx3.onenote"

type flags struct {
	configPath string
	devtools   bool
}

func parseArgs(args []string) flags {
	var f flags
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 < len(args) {
				f.configPath = args[i+1]
				i++
			}
		case "--devtools":
			f.devtools = true
		}
	}
	return f
}

func main() {
	f := parseArgs(os.Args[1:])

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onenote-app: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "onenote-app: %v\n", err)
		os.Exit(1)
	}

	store, err := prefs.Open(cfg.Options.Storage, paths.PrefsPath(paths.DataDir(), cfg.Options.Storage))
	if err != nil {
		fmt.Fprintf(os.Stderr, "onenote-app: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	profile := desktop.ProfileDir(paths.DataDir())
	if err := desktop.PrepareProfile(profile); err != nil {
		fmt.Fprintf(os.Stderr, "onenote-app: %v\n", err)
	}

	app := newApp(cfg, store, profile)
	go app.loop.Run(ctx)
	go app.tray.Run()

	iconPNG, err := icon.PNG(256)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onenote-app: icon: %v\n", err)
	}

	visible := prefs.Visible(store)
	err = wails.Run(&options.App{
		Title:       shell.Title,
		Width:       cfg.Options.Width,
		Height:      cfg.Options.Height,
		MinWidth:    cfg.Options.MinWidth,
		MinHeight:   cfg.Options.MinHeight,
		StartHidden: !visible,
		AssetServer: &assetserver.Options{
			Handler: desktop.AssetHandler(),
		},
		Menu:             app.renderer.Menu(shell.AppMenu(visible)),
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: uniqueID,
			OnSecondInstanceLaunch: func(options.SecondInstanceData) {
				app.loop.Post(app.ctrl.SecondInstance)
			},
		},
		OnStartup:     app.startup,
		OnDomReady:    app.domReady,
		OnBeforeClose: app.beforeClose,
		OnShutdown:    app.shutdown,
		Bind:          []interface{}{app},

		BindingsAllowedOrigins: desktop.AllowedOrigins,
		Debug: options.Debug{
			OpenInspectorOnStartup: f.devtools,
		},
		Windows: &windows.Options{
			WebviewUserDataPath: profile,
		},
		Linux: &linux.Options{
			Icon: iconPNG,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "onenote-app: %v\n", err)
		os.Exit(1)
	}
}
