package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-website/apiclient"
	"hotel-website/config"
	"hotel-website/controllers"
	"hotel-website/routes"
	"hotel-website/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}
	log.Printf("✅ Using reservation API at %s (%s)", cfg.APIBaseURL, cfg.Env)

	// The reservation/room/order backend is an external collaborator; all
	// traffic to it goes through this one client.
	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)

	// Initialize services
	orderService := services.NewOrderService(api)
	chatService := services.NewChatService()
	sessions := controllers.NewSessionStore(cfg.SessionTTL)

	// Initialize controllers
	roomController := controllers.NewRoomController(api)
	bookingController := controllers.NewBookingController(api, sessions, cfg)
	orderController := controllers.NewOrderController(orderService)
	chatController := controllers.NewChatController(chatService)
	contentController := controllers.NewContentController()

	// Build router
	router := routes.SetupRouter(roomController, bookingController, orderController, chatController, contentController)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Sweep idle booking sessions in the background.
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.SessionTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sessions.Sweep()
			case <-sweepDone:
				return
			}
		}
	}()

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")
	close(sweepDone)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
