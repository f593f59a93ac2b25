package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter assembles the HTTP surface: public auth and laundry reads,
// authenticated laundry management and bookings, and the swagger UI when a
// docs directory is configured.
func NewRouter(
	authHandler *AuthHandler,
	laundryHandler *LaundryHandler,
	bookingHandler *BookingHandler,
	authRequired gin.HandlerFunc,
	swaggerDir string,
) *gin.Engine {
	r := gin.Default()

	authHandler.Register(r.Group("/api/auth"))
	laundryHandler.Register(r.Group("/api/laundries"), authRequired)

	bookingGroup := r.Group("/api/bookings")
	bookingGroup.Use(authRequired)
	bookingHandler.Register(bookingGroup)

	if swaggerDir != "" {
		r.StaticFile("/swagger/openapi.json", filepath.Join(swaggerDir, "openapi.json"))
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/openapi.json"))))
	}

	return r
}
