package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/userlist/internal/config"
	"github.com/ytget/userlist/internal/dispatch"
	"github.com/ytget/userlist/internal/logging"
	"github.com/ytget/userlist/internal/platform"
	"github.com/ytget/userlist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.userlist"
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewListTheme())

	settings := config.NewSettings(myApp)

	logger := logging.Noop()
	if settings.GetVerboseLogging() {
		logger = logging.New(os.Stderr)
	}

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())
	logger.Infof("User List v%s starting, language=%s", version, localization.GetCurrentLanguage())

	myWindow := myApp.NewWindow(localization.GetText(ui.KeyAppTitle))
	myWindow.Resize(settings.GetWindowSize())

	client := platform.NewUsersClient(platform.WithLogger(logger))
	screen := ui.NewUsersScreen(client, dispatch.NewFyne(),
		ui.WithLocalization(localization),
		ui.WithScreenLogger(logger),
	)
	myWindow.SetContent(screen.Content())

	// Bind and fetch once the driver loop is running, like a view appearing
	myApp.Lifecycle().SetOnStarted(func() {
		screen.Activate(context.Background())
	})

	myWindow.SetOnClosed(func() {
		size := myWindow.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
	})

	myWindow.ShowAndRun()
}
