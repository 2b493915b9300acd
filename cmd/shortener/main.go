package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/app"
	"github.com/fsdevblog/shortlinks/internal/bmeta"
	"github.com/fsdevblog/shortlinks/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bmeta.Print(buildVersion, buildDate, buildCommit)

	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	a.Logger.Info("Starting server",
		zap.String("address", appConf.ServerAddress),
		zap.String("base_url", appConf.BaseURL),
		zap.String("access_log_mode", string(appConf.AccessLogMode)),
		zap.String("reset_schedule", appConf.ResetSchedule),
	)
	if err := a.Run(); err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Fatal("application stopped with error", zap.Error(err))
	}
}
