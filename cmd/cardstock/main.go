package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mostevr/cardstock/config"
	"github.com/mostevr/cardstock/internal/api"
	"github.com/mostevr/cardstock/internal/app"
	"github.com/mostevr/cardstock/internal/webserver"
	"go.uber.org/zap"
)

var (
	conffile = flag.String("c", "cardstock.yml", "config file")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*conffile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	webserver.Init(application)
	api.InitRouter()

	errc := make(chan error, 1)
	go func() {
		errc <- webserver.Listen()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		zap.S().Errorf("web server stopped: %v", err)
	case sig := <-sigc:
		zap.S().Infof("received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webserver.Shutdown(ctx); err != nil {
		zap.S().Errorf("web server shutdown error: %v", err)
	}
}
