package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hoaikthai/fin-api/api"
	"github.com/hoaikthai/fin-api/internal/config"
	"github.com/hoaikthai/fin-api/internal/logging"
	"github.com/hoaikthai/fin-api/internal/operator"
	"github.com/hoaikthai/fin-api/internal/scheduler"
	"github.com/hoaikthai/fin-api/internal/service"
	"github.com/hoaikthai/fin-api/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("fin-api starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage.Reader, delegator, service.SystemClock(), logger)

	if err := svc.Category.EnsureDefaultsSeeded(context.Background()); err != nil {
		logrus.WithError(err).Fatal("CategoryService.EnsureDefaultsSeeded")
		return
	}

	cronScheduler := scheduler.NewScheduler(svc.Recurring, logger)
	if err := cronScheduler.Start(envConfig.RecurringCron); err != nil {
		logrus.WithError(err).Fatal("scheduler.Start")
		return
	}
	defer cronScheduler.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
