// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package supervisor runs Wayfinder's long-lived services under a suture v4 tree.

	RootSupervisor ("wayfinder")
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocketHubService (if REALTIME_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with backoff inside its own layer, so a hub
failure does not take the HTTP server down with it. Canceling the context
passed to Serve stops every layer; services get ShutdownTimeout to return.

Supervisor events are logged through an slog.Logger; main passes
logging.NewSlogLogger() so they end up in zerolog.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
