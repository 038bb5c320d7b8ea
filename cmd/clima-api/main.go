package main

import (
	"github.com/labstack/echo/v4"

	"clima-api/configs"
	"clima-api/internal/application/controller"
	"clima-api/internal/application/middleware"
	"clima-api/internal/application/schedule"
	"clima-api/internal/domain/gateway/api"
	"clima-api/internal/domain/gateway/geo"
	"clima-api/internal/domain/gateway/storage"
	"clima-api/internal/domain/usecase/favorites"
	"clima-api/internal/domain/usecase/health"
	"clima-api/internal/domain/usecase/weather"
	"clima-api/pkg/cache"
	"clima-api/pkg/http"
	"clima-api/pkg/log"
	"clima-api/pkg/msg"
	"clima-api/pkg/redis"
	"clima-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewRequestValidator()
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Init cache with the per-kind freshness windows and eviction floors
	dataCache := cache.New(cache.NewPolicy(
		resource.GetDuration("app.cache.current.stale-after"),
		resource.GetDuration("app.cache.current.evict-after"),
	))
	for _, name := range []string{weather.CacheCurrent, weather.CacheForecast, weather.CacheAirQuality, weather.CacheCitySearch} {
		dataCache.RegisterPolicy(name, cache.NewPolicy(
			resource.GetDuration("app.cache."+name+".stale-after"),
			resource.GetDuration("app.cache."+name+".evict-after"),
		))
	}

	// Init gateways
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.api-key"),
		api.GatewayOptions{
			ClientOptions:     http.ClientOptions{Logger: http.NewZapHTTPLogger()},
			RequestsPerSecond: resource.GetFloat64("app.weather.requests-per-second"),
			Burst:             resource.GetInt("app.weather.burst"),
		},
	)
	locator := geo.NewIPLocator(resource.GetString("app.geolocation.base-url"), http.ClientOptions{})
	favoritesStorage := newFavoritesStorage()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, locator, dataCache, resource.GetDuration("app.geolocation.timeout"))
	favoritesUseCase := favorites.NewFavoritesUseCase(favoritesStorage)
	healthUseCase := health.NewHealthUseCase(favoritesUseCase, dataCache)

	// Init Controller
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	favoritesController := controller.NewFavoritesController(apiGroup, favoritesUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	favoritesController.InitFavoritesRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	cacheScheduler := schedule.NewCacheScheduler(dataCache)
	cacheScheduler.InitCacheScheduleTasks()

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

// newFavoritesStorage builds the storage backend selected in configuration.
// The in-memory backend exists for targets that do not need persistence.
func newFavoritesStorage() storage.Storage {
	switch resource.GetString("app.favorites.backend") {
	case "redis":
		config := redis.NewRedisConfig().
			WithHost(resource.GetString("app.favorites.redis.host")).
			WithPort(resource.GetInt("app.favorites.redis.port")).
			WithPassword(resource.GetString("app.favorites.redis.password")).
			WithDatabase(resource.GetInt("app.favorites.redis.database"))
		return storage.NewRedisStorage(redis.NewClient(config), configs.Env.ApplicationName)
	case "memory":
		return storage.NewMemoryStorage()
	default:
		fileStorage, err := storage.NewFileStorage(resource.GetString("app.favorites.file.dir"))
		if err != nil {
			log.Fatalf("Failed to initialize favorites storage: %v", err)
		}
		return fileStorage
	}
}
