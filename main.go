package main

import (
	"embed"
	"log"

	"conciliador/internal/app"
	"conciliador/internal/config"
	"conciliador/internal/infrastructure/logging"
	"conciliador/internal/netutil"

	"github.com/spf13/pflag"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	configPath := pflag.String("config", config.DefaultPath(), "path to the settings file")
	pflag.Parse()

	appLogger := logging.NewDefaultLogger()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// The backend port is chosen once here and is immutable for the process
	// lifetime. Failure to allocate one is a broken environment.
	port, err := netutil.AllocateEphemeralPort()
	if err != nil {
		log.Fatal(err)
	}
	appLogger.Info("Selected dynamic backend port", "port", int(port))

	// Create an instance of the app structure
	application, err := app.NewApp(settings, port, appLogger)
	if err != nil {
		log.Fatal(err)
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:            "Conciliación Financiera",
		Width:            settings.WindowWidth,
		Height:           settings.WindowHeight,
		MinWidth:         900,
		MinHeight:        600,
		DisableResize:    false,
		Fullscreen:       false,
		StartHidden:      false,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:             nil,
		Logger:           logging.NewWailsLoggerAdapter(appLogger),
		LogLevel:         logger.INFO,
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Bind: []interface{}{
			application,
		},
		// Windows platform specific options
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
			WebviewUserDataPath:  "",
			ZoomFactor:           1.0,
		},
		// Mac platform specific options: translucent sidebar-style window
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  false,
				HideTitleBar:               false,
				FullSizeContent:            false,
				UseToolbar:                 false,
				HideToolbarSeparator:       true,
			},
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			About: &mac.AboutInfo{
				Title:   "Conciliación Financiera",
				Message: "",
			},
		},
	})

	if err != nil {
		log.Fatal(err)
	}
}
