package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-website/controllers"
	"hotel-website/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the site's HTTP surface.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	oc *controllers.OrderController,
	cc *controllers.ChatController,
	pc *controllers.ContentController,
) *gin.Engine {
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
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/pages/:slug", pc.GetPage)
		api.GET("/menu", pc.GetMenu)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/catalog", rc.GetCatalog)
		}

		chat := api.Group("/chat")
		{
			chat.GET("", cc.Greeting)
			chat.POST("", cc.Reply)
		}

		api.POST("/orders", oc.CreateOrder)

		booking := api.Group("/booking")
		{
			booking.GET("", bc.GetState)
			booking.POST("/dates", bc.SelectDates)
			booking.POST("/room", bc.SelectRoom)
			booking.POST("/submit", bc.Submit)
		}
	}

	return r
}
