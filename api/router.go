package api

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/stations"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

const apiVersion = "1.0.0"

type Services struct {
	Stations stations.StationUseCase
	Trains   trains.TrainUseCase
	Bookings booking.BookingUseCase
}

// NewRouter builds the gin engine serving the REST API under /api.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	if cfg.App.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(recovery(cfg.App.Production())))
	r.Use(cors.New(corsConfig(cfg.HTTP.CORSOrigin)))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": cfg.App.Name,
			"version": apiVersion,
			"endpoints": gin.H{
				"trains":   "/api/trains",
				"bookings": "/api/bookings",
				"stations": "/api/stations",
			},
		})
	})
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   cfg.App.Name + " v1",
			"endpoints": endpointIndex,
		})
	})

	api := r.Group("/api")
	NewTrainHandler(svc.Trains).Register(api.Group("/trains"))
	NewStationHandler(svc.Stations).Register(api.Group("/stations"))
	NewBookingHandler(svc.Bookings).Register(api.Group("/bookings"))

	if cfg.HTTP.SwaggerDir != "" {
		r.Static("/swagger", cfg.HTTP.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/railway.swagger.json"))))
	}
	if cfg.HTTP.StaticDir != "" {
		r.Static("/app", cfg.HTTP.StaticDir)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, envelope{Success: false, Message: "Route not found"})
	})

	return r
}

func corsConfig(origin string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{origin}
	cfg.AllowCredentials = true
	return cfg
}

// recovery turns a panic into a 500 envelope. The stack is only exposed
// outside production.
func recovery(production bool) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		stack := string(debug.Stack())
		log.Printf("panic serving %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, recovered, stack)

		body := envelope{Success: false, Message: fmt.Sprint(recovered)}
		if body.Message == "" {
			body.Message = "Internal Server Error"
		}
		if !production {
			body.Stack = stack
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}
}

var endpointIndex = gin.H{
	"trains": gin.H{
		"getAll":  "GET /api/trains",
		"getById": "GET /api/trains/:id",
		"search":  "GET /api/trains/search?origin=&destination=",
		"create":  "POST /api/trains",
		"update":  "PUT /api/trains/:id",
		"delete":  "DELETE /api/trains/:id",
	},
	"bookings": gin.H{
		"getAll":     "GET /api/bookings",
		"getById":    "GET /api/bookings/:id",
		"getByEmail": "GET /api/bookings/search?email=",
		"create":     "POST /api/bookings",
		"update":     "PUT /api/bookings/:id",
		"cancel":     "PATCH /api/bookings/:id/cancel",
		"delete":     "DELETE /api/bookings/:id",
	},
	"stations": gin.H{
		"getAll":    "GET /api/stations",
		"getById":   "GET /api/stations/:id",
		"getByCode": "GET /api/stations/code/:code",
		"search":    "GET /api/stations/search?city=",
		"create":    "POST /api/stations",
		"update":    "PUT /api/stations/:id",
		"delete":    "DELETE /api/stations/:id",
	},
}
