package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/prernajain1224/MHPS-Website/api/swagger"
	"github.com/prernajain1224/MHPS-Website/internal/handler"
	"github.com/prernajain1224/MHPS-Website/internal/middleware"
	"github.com/prernajain1224/MHPS-Website/internal/repository"
	"github.com/prernajain1224/MHPS-Website/internal/service"
	"github.com/prernajain1224/MHPS-Website/pkg/cache"
	"github.com/prernajain1224/MHPS-Website/pkg/config"
	"github.com/prernajain1224/MHPS-Website/pkg/database"
	"github.com/prernajain1224/MHPS-Website/pkg/logger"
	corsmiddleware "github.com/prernajain1224/MHPS-Website/pkg/middleware/cors"
	reqidmiddleware "github.com/prernajain1224/MHPS-Website/pkg/middleware/requestid"
	timingmiddleware "github.com/prernajain1224/MHPS-Website/pkg/middleware/timing"
)

// @title MHPS Content API
// @version 1.0.0
// @description Content API for the institutional website: press, events, articles, historical timeline and photo galleries.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TimelineTTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	validate := service.NewValidator()

	pageRepo := repository.NewPageRepository(db)
	indexRepo := repository.NewIndexRepository(db)
	pressRepo := repository.NewPressRepository(db)
	eventRepo := repository.NewEventRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	pressGalleryRepo := repository.NewPressGalleryRepository(db)

	indexSvc := service.NewIndexService(indexRepo, validate, logr)
	pressSvc := service.NewPressService(pressRepo, pageRepo, validate, logr)
	eventSvc := service.NewEventService(eventRepo, pageRepo, validate, logr)
	articleSvc := service.NewArticleService(articleRepo, pageRepo, validate, logr)
	timelineSvc := service.NewTimelineService(timelineRepo, pageRepo, cacheSvc, cfg.Cache.TimelineTTL, validate, logr)
	gallerySvc := service.NewGalleryService(galleryRepo, pageRepo, validate, logr)
	pressGallerySvc := service.NewPressGalleryService(pressGalleryRepo, pageRepo, validate, logr)
	exportSvc := service.NewExportService(pressRepo, eventRepo, articleRepo, nil, nil, logr)

	indexHandler := handler.NewIndexHandler(indexSvc)
	pressHandler := handler.NewPressHandler(pressSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	articleHandler := handler.NewArticleHandler(articleSvc)
	timelineHandler := handler.NewTimelineHandler(timelineSvc)
	galleryHandler := handler.NewGalleryHandler(gallerySvc)
	pressGalleryHandler := handler.NewPressGalleryHandler(pressGallerySvc)
	exportHandler := handler.NewExportHandler(exportSvc, cfg.Export.Enabled)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(timingmiddleware.New())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	pages := api.Group("/pages")
	pages.GET("/:id", indexHandler.Get)
	pages.POST("", indexHandler.Create)
	pages.PUT("/:id", indexHandler.Update)
	pages.DELETE("/:id", indexHandler.Delete)

	press := api.Group("/press")
	press.GET("/:id", pressHandler.List)
	press.GET("/items/:id", pressHandler.Get)
	press.POST("/items", pressHandler.Create)
	press.PUT("/items/:id", pressHandler.Update)
	press.DELETE("/items/:id", pressHandler.Delete)

	events := api.Group("/events")
	events.GET("/:id", eventHandler.List)
	events.GET("/items/:id", eventHandler.Get)
	events.POST("/items", eventHandler.Create)
	events.PUT("/items/:id", eventHandler.Update)
	events.DELETE("/items/:id", eventHandler.Delete)

	articles := api.Group("/articles")
	articles.GET("/:id", articleHandler.List)
	articles.GET("/items/:id", articleHandler.Get)
	articles.POST("/items", articleHandler.Create)
	articles.PUT("/items/:id", articleHandler.Update)
	articles.DELETE("/items/:id", articleHandler.Delete)

	about := api.Group("/about")
	about.GET("/:id", timelineHandler.List)
	about.GET("/events/:id", timelineHandler.Get)
	about.POST("/events", timelineHandler.Create)
	about.PUT("/events/:id", timelineHandler.Update)
	about.DELETE("/events/:id", timelineHandler.Delete)

	galleries := api.Group("/galleries")
	galleries.GET("/:id", galleryHandler.List)
	galleries.GET("/albums/:id", galleryHandler.Get)
	galleries.POST("/albums", galleryHandler.Create)
	galleries.PUT("/albums/:id", galleryHandler.Update)
	galleries.DELETE("/albums/:id", galleryHandler.Delete)
	galleries.POST("/albums/:id/images", galleryHandler.AddImage)
	galleries.PUT("/albums/:id/images/order", galleryHandler.ReorderImages)
	galleries.DELETE("/albums/:id/images/:imageId", galleryHandler.RemoveImage)

	pressGalleries := api.Group("/press-galleries")
	pressGalleries.GET("/:id", pressGalleryHandler.ListCategories)
	pressGalleries.GET("/categories/:id", pressGalleryHandler.ListAlbums)
	pressGalleries.POST("/categories", pressGalleryHandler.CreateCategory)
	pressGalleries.PUT("/categories/:id", pressGalleryHandler.UpdateCategory)
	pressGalleries.DELETE("/categories/:id", pressGalleryHandler.DeleteCategory)
	pressGalleries.GET("/albums/:id", pressGalleryHandler.GetAlbum)
	pressGalleries.POST("/albums", pressGalleryHandler.CreateAlbum)
	pressGalleries.PUT("/albums/:id", pressGalleryHandler.UpdateAlbum)
	pressGalleries.DELETE("/albums/:id", pressGalleryHandler.DeleteAlbum)
	pressGalleries.POST("/albums/:id/images", pressGalleryHandler.AddAlbumImage)
	pressGalleries.DELETE("/albums/:id/images/:imageId", pressGalleryHandler.RemoveAlbumImage)

	api.GET("/export/:family/:format", exportHandler.Download)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
