package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketfront/app/bootstrap"
	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/goroutine"
	"github.com/x-xyz/marketfront/base/log"
	bValidator "github.com/x-xyz/marketfront/base/validator"
	mmiddleware "github.com/x-xyz/marketfront/middleware"
	catalog_delivery "github.com/x-xyz/marketfront/stores/catalog/delivery/http"
	hc_delivery "github.com/x-xyz/marketfront/stores/healthcheck/delivery/http"
	notification_delivery "github.com/x-xyz/marketfront/stores/notification/delivery/http"
	purchase_delivery "github.com/x-xyz/marketfront/stores/purchase/delivery/http"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		// the notification stream hijacks the connection
		Skipper: func(c echo.Context) bool { return websocket.IsWebSocketUpgrade(c.Request()) },
	}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	app, err := bootstrap.New(context)
	if err != nil {
		context.WithField("err", err).Panic("bootstrap.New failed")
	}

	listingPriceTtl := viper.GetDuration("catalog.listingPriceCacheTtl")
	if listingPriceTtl > 0 {
		catalog_delivery.New(e, app.Catalog, mmiddleware.CacheHttp(app.Cache, listingPriceTtl))
	} else {
		catalog_delivery.New(e, app.Catalog)
	}
	purchase_delivery.New(e, app.Catalog, app.Purchase)
	notification_delivery.New(e, app.Notification)
	hc_delivery.New(e, app.HealthCheck)

	// initial load, failures end up in the notification feed
	goroutine.RecoverableGo(func() {
		timeout := viper.GetDuration("context.timeout")
		if timeout <= 0 {
			timeout = 2 * time.Minute
		}
		loadCtx, cancel := ctx.WithTimeout(context, timeout)
		defer cancel()
		if _, err := app.Catalog.Load(loadCtx); err != nil {
			context.WithField("err", err).Warn("initial catalog load failed")
		}
	}, goroutine.WithName("initial catalog load"))

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
