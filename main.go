package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"go.aimuz.me/haunt/config"
	"go.aimuz.me/haunt/desktop"
	"go.aimuz.me/haunt/haunt"
	"go.aimuz.me/haunt/internal/app"
	"go.aimuz.me/haunt/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		return config.Default()
	}
	return cfg
}

func main() {
	cfg := loadConfig()
	logging.Setup(cfg.LogLevel)
	slog.Info("starting app", "version", version, "commit", commit, "date", date)

	wails := application.New(application.Options{
		Name:        "Haunt",
		Description: "A restless desktop",
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: true,
		},
	})

	mainWindow := wails.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:         "The Haunting",
		Width:         400,
		Height:        200,
		URL:           "/",
		DisableResize: true,
	})

	overlay := wails.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:          "ghost",
		Width:          haunt.TypingBox.Width,
		Height:         haunt.TypingBox.Height,
		URL:            "/overlay.html",
		Frameless:      true,
		AlwaysOnTop:    true,
		Hidden:         true,
		DisableResize:  true,
		BackgroundType: application.BackgroundTypeTransparent,
	})

	svc, err := app.New(app.Options{
		Config:   cfg,
		Platform: desktop.New(wails, mainWindow, overlay),
	})
	if err != nil {
		slog.Error("create service", "error", err)
		os.Exit(1)
	}

	wails.Event.On(app.EventAppease, func(*application.CustomEvent) {
		svc.Appease()
	})

	wails.Event.OnApplicationEvent(events.Common.ApplicationStarted, func(*application.ApplicationEvent) {
		if err := svc.Start(context.Background()); err != nil {
			slog.Error("start service", "error", err)
		}
	})

	mainWindow.RegisterHook(events.Common.WindowClosing, func(*application.WindowEvent) {
		svc.Shutdown()
		wails.Quit()
	})

	tray := wails.SystemTray.New()
	tray.SetLabel("Haunt")
	trayMenu := wails.NewMenu()
	trayMenu.Add("Appease").OnClick(func(*application.Context) {
		svc.Appease()
	})
	trayMenu.AddSeparator()
	trayMenu.Add("Quit").
		SetAccelerator("CmdOrCtrl+Q").
		OnClick(func(*application.Context) {
			svc.Shutdown()
			wails.Quit()
		})
	tray.SetMenu(trayMenu)

	if err := wails.Run(); err != nil {
		slog.Error("run app", "error", err)
	}
	svc.Shutdown()
}
