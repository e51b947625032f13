package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"
	_ "time/tzdata"

	"childminder-backend/config"
	apiv1 "childminder-backend/controllers/v1"
	_ "childminder-backend/docs"
	"childminder-backend/fiberlog"
	"childminder-backend/initializers"
	"childminder-backend/lib/ws"
	"childminder-backend/middleware"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

// json api bodies, uploads go through the app wide limit
const apiBodyLimit = 1024 * 1024

// @title Childminder enforcement API
// @version 1.0
// @description Back office API for childminder registration enforcement
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	if config.Conf.App.ErrNotify != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotify))
	}
	apiV1.Use(middleware.WithBodyLimit(apiBodyLimit))
	apiv1.InitHealthApiRouters(apiV1)
	apiv1.InitAuthApiRouters(apiV1)

	//back office
	office := apiV1.Group("", middleware.AuthorizationRequired())
	apiv1.InitEmployeeApiRouters(office)
	apiv1.InitCaseApiRouters(office)
	apiv1.InitEvidenceApiRouters(office)
	apiv1.InitDraftApiRouters(office)
	apiv1.InitDispatchApiRouters(office)
	apiv1.InitExportApiRouters(office)

	//admin panel
	adminPanel := fiber.New()
	office.Mount("/admin_panel", adminPanel)
	apiv1.InitAdminApiRouters(adminPanel)

	//push
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
