package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-backend/controllers"
	"rental-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers groups every handler the router mounts.
type Controllers struct {
	Report       *controllers.ReportController
	Property     *controllers.PropertyController
	RoomType     *controllers.RoomTypeController
	Room         *controllers.RoomController
	Availability *controllers.AvailabilityController
	Reservation  *controllers.ReservationController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Owner-ID", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	owner := r.Group("/api/owner", middleware.OwnerContext())
	{
		reports := owner.Group("/reports")
		{
			reports.GET("/dashboard", ctl.Report.Dashboard)
			reports.GET("/properties", ctl.Report.Properties)
			reports.GET("/properties/:id", ctl.Report.Property)

			reports.GET("/cache/properties/:id", ctl.Report.CachedProperty)
			reports.DELETE("/cache/properties/:id", ctl.Report.PurgeProperty)
			reports.GET("/cache/room-types/:id", ctl.Report.CachedRoomType)
			reports.DELETE("/cache/room-types/:id", ctl.Report.PurgeRoomType)
		}

		properties := owner.Group("/properties")
		{
			properties.GET("", ctl.Property.List)
			properties.POST("", ctl.Property.Create)
			properties.GET("/:id", ctl.Property.Get)
			properties.PUT("/:id", ctl.Property.Update)
			properties.DELETE("/:id", ctl.Property.Delete)

			properties.GET("/:id/room-types", ctl.RoomType.ListByProperty)
			properties.POST("/:id/room-types", ctl.RoomType.Create)
		}

		roomTypes := owner.Group("/room-types")
		{
			roomTypes.GET("/:id", ctl.RoomType.Get)
			roomTypes.PUT("/:id", ctl.RoomType.Update)
			roomTypes.DELETE("/:id", ctl.RoomType.Delete)

			roomTypes.GET("/:id/rooms", ctl.Room.ListByRoomType)
			roomTypes.POST("/:id/rooms", ctl.Room.Create)

			roomTypes.GET("/:id/availability", ctl.Availability.List)
			roomTypes.PUT("/:id/availability", ctl.Availability.SetRange)
		}

		owner.DELETE("/rooms/:id", ctl.Room.Delete)

		reservations := owner.Group("/reservations")
		{
			reservations.GET("/:id", ctl.Reservation.Get)
			reservations.PATCH("/:id/status", ctl.Reservation.UpdateStatus)
		}
	}

	return r
}
