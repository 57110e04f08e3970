// main.go
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"go-redstore/catalog"
	"go-redstore/config"
	"go-redstore/controllers"
	"go-redstore/middleware"
	"go-redstore/routes"
	"go-redstore/storage"
	"go-redstore/store"
	"go-redstore/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := openStorage(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open storage")
	}
	defer closeKV()

	stores := store.New(kv)
	users := store.NewUsers(kv)
	emailService := utils.NewEmailService(cfg.SendgridAPIKey, cfg.EmailSender)

	// Initialize controllers
	userController := controllers.NewUserController(users)
	productController := controllers.NewProductController(openCatalog(cfg))
	cartController := controllers.NewCartController(stores)
	favoritesController := controllers.NewFavoritesController(stores)
	orderController := controllers.NewOrderController(stores, emailService)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.SessionMiddleware)
	router.Use(middleware.AuthMiddleware)
	routes.RegisterRoutes(router, userController, productController, cartController, favoritesController, orderController)

	if cfg.ImagesDir != "" {
		router.PathPrefix("/images/").Handler(
			http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.ImagesDir))))
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	go func() {
		logrus.WithField("port", cfg.Port).Info("server is running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("shutdown failed")
	}
	logrus.Info("server stopped")
}

func openStorage(ctx context.Context, cfg config.Config) (storage.KV, func(), error) {
	switch cfg.StorageBackend {
	case "file":
		f, err := storage.OpenFile(cfg.StateFile)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	case "mongo":
		client, err := storage.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logrus.WithError(err).Error("failed to disconnect mongo")
			}
		}
		return storage.NewMongo(client), closeFn, nil
	default:
		return storage.NewMemory(), func() {}, nil
	}
}

func openCatalog(cfg config.Config) catalog.Source {
	if cfg.CatalogURL != "" {
		return catalog.NewClient(cfg.CatalogURL)
	}
	seed := cfg.CatalogSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return catalog.Generate(cfg.CatalogSize, seed)
}
