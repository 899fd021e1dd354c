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

	"rental-backend/config"
	"rental-backend/controllers"
	"rental-backend/routes"
	"rental-backend/services"
	"rental-backend/services/report"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("✅ Database connection established and migrations applied.")

	var lock report.RefreshLocker
	rdb, err := config.ConnectRedis(context.Background())
	switch {
	case err != nil:
		log.Printf("⚠️  Redis unavailable, report refresh lock disabled: %v", err)
	case rdb != nil:
		lock = report.NewRedisRefreshLock(rdb)
		defer rdb.Close()
		log.Println("✅ Redis refresh lock enabled.")
	}

	reportService := report.NewService(report.NewGormStore(db), config.LoadReportConfig(), lock)

	router := routes.SetupRouter(routes.Controllers{
		Report:       controllers.NewReportController(reportService),
		Property:     controllers.NewPropertyController(services.NewPropertyService(db)),
		RoomType:     controllers.NewRoomTypeController(services.NewRoomTypeService(db)),
		Room:         controllers.NewRoomController(services.NewRoomService(db)),
		Availability: controllers.NewAvailabilityController(services.NewAvailabilityService(db)),
		Reservation:  controllers.NewReservationController(services.NewReservationService(db, reportService.Cache())),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	// let in-flight cache refreshes finish before the pool closes
	reportService.WaitForRefreshes()
	log.Println("✅ Server stopped gracefully")
}
