package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "busport/backend/internal/config"
	h "busport/backend/internal/http/handlers"
	"busport/backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.POST("/auth/login", h.Login)
		api.POST("/auth/register", h.Register)

		users := api.Group("/users", auth)
		users.GET("/me", h.GetMe)
		users.PUT("/me", h.UpdateMe)

		buses := api.Group("/buses")
		buses.GET("", h.ListBuses)
		buses.GET("/:id", h.GetBusInfo)
		buses.GET("/:id/seat-layout", h.GetSeatLayout)
		buses.GET("/:id/booked-seats", h.GetBookedSeats)
		buses.GET("/:id/seat-selection", h.GetSeatSelection)
		buses.GET("/:id/reviews", h.ListBusReviews)
		buses.POST("/:id/reviews", auth, h.CreateBusReview)

		api.POST("/quotes", h.CreateQuote)

		bookings := api.Group("/bookings", auth)
		bookings.GET("", h.ListMyBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/:id/e-ticket", h.GetBookingETicket)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
