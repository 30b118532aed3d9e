package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saibhanage/me-api-playground/api"
	"github.com/saibhanage/me-api-playground/config"
	"github.com/saibhanage/me-api-playground/database"
	"github.com/saibhanage/me-api-playground/ratelimit"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}
	c := config.New()

	connStr := c.String("DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.String("DB_HOST", "localhost"),
			c.String("DB_USER", "postgres"),
			c.String("DB_PASSWORD", ""),
			c.String("DB_NAME", "me_api"),
			c.String("DB_PORT", "5432"),
			c.String("DB_SSLMODE", "disable"),
		)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	if c.Bool("SEED_DB", false) {
		fmt.Println("Seeding sample data...")
		if err := database.Seed(db); err != nil {
			fmt.Printf("Error seeding database: %v\n", err)
			os.Exit(1)
		}
	}

	currentDB := database.New(db)

	limiter := ratelimit.New(
		c.Duration("RATE_LIMIT_WINDOW", 15*time.Minute),
		c.Int("RATE_LIMIT_MAX", 100),
	)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, c, limiter)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
