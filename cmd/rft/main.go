package main

import (
	"errors"
	"os"

	"github.com/monshunter/rft/cmd/rft/app"
	"github.com/monshunter/rft/pkg/exitcode"
	"github.com/monshunter/rft/pkg/log"
)

// Version information set by build-time LDFLAGS
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	// Set version information for the app package
	app.SetVersionInfo(Version, BuildTime, GoVersion)

	if err := app.Run(); err != nil {
		log.Errorf("%s", err)
		var xerr *exitcode.Error
		if errors.As(err, &xerr) {
			os.Exit(xerr.Code)
		}
		os.Exit(1)
	}
}
