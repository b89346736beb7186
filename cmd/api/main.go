package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + app.config.port,
		Handler:      app.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Server listening on :%s (ReadTimeout=%s WriteTimeout=%s IdleTimeout=%s)",
			app.config.port, server.ReadTimeout, server.WriteTimeout, server.IdleTimeout)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}

	case sig := <-quit:
		log.Printf("\n[shutdown] signal received: %v — beginning graceful shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), app.config.shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("[shutdown] could not stop server gracefully: %v", err)
			server.Close()
		}
		if err := app.mongo.Disconnect(ctx); err != nil {
			log.Printf("[shutdown] database disconnect: %v", err)
		}
	}
}
