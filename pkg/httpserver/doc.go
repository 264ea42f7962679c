// Package httpserver runs an http.Handler with production timeouts and
// graceful shutdown, and provides liveness and readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, on SIGINT or SIGTERM, or after
// Shutdown. In-flight requests get the configured shutdown timeout to finish.
package httpserver
