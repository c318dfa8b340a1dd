// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package supervisor provides process supervision for the API server using
suture v4.

# Overview

Services are grouped into three layers so a failure in one never restarts
another:

	RootSupervisor ("airdefence")
	├── ModelSupervisor ("model-layer")
	│   └── ModelReloadService
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventConsumerService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (start, failure, backoff, restart) are logged through
sutureslog, which takes a *slog.Logger; main passes logging.NewSlogLogger()
so they land in the same zerolog stream as everything else.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddModelService(services.NewModelReloadService(store, predictor, reloadCfg, logger))
	tree.AddMessagingService(services.NewEventConsumerService(consumer))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	errCh := tree.ServeBackground(ctx)

# Shutdown

Canceling the context stops every layer. Services that do not return
within ShutdownTimeout are listed by UnstoppedServiceReport, which main
logs before exiting.
*/
package supervisor
