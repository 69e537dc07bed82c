package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skillswap/internal/handlers"
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/repositories"
	"skillswap/internal/services"
	"skillswap/pkg/rabbitmq"
)

// stores bundles the per-entity repositories selected by DB_DRIVER.
type stores struct {
	users         repositories.UserRepository
	swaps         repositories.SwapRequestRepository
	messages      repositories.MessageRepository
	notifications repositories.NotificationRepository
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("DB_DRIVER", "memory") // memory | sqlite | postgres
	viper.SetDefault("DATABASE_DSN", "skillswap.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SEED_DEMO_DATA", true)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	uploadDir := viper.GetString("UPLOAD_DIR")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", uploadDir, err)
	}

	// --- Initialize Repositories ---
	st, err := newStores(viper.GetString("DB_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Notifications are fully functional without a broker; the event stream is
	// a side channel for external consumers.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, notification events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(st.users, jwtSecret)
	userService := services.NewUserService(st.users)
	notificationService := services.NewNotificationService(st.notifications, mqClient)
	swapService := services.NewSwapService(st.swaps, st.users, notificationService)
	messageService := services.NewMessageService(st.messages, st.users, notificationService)
	adminService := services.NewAdminService(st.users, st.swaps, st.messages, st.notifications)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, uploadDir)
	swapHandler := handlers.NewSwapHandler(swapService)
	messageHandler := handlers.NewMessageHandler(messageService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// --- Seed demo data ---
	if viper.GetBool("SEED_DEMO_DATA") {
		seedDemoUsers(st.users)
	}

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	// --- Static assets ---
	app.Static("/uploads", uploadDir)

	// --- API Routes ---
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public authentication routes
	authHandler.RegisterRoutes(api)

	// Protected routes (require a valid session token)
	protected := api.Group("", middleware.AuthRequired(authService))
	userHandler.RegisterRoutes(protected)
	swapHandler.RegisterRoutes(protected)
	messageHandler.RegisterRoutes(protected)
	notificationHandler.RegisterRoutes(protected)

	// Admin routes
	admin := protected.Group("/admin", middleware.AdminRequired())
	adminHandler.RegisterRoutes(admin)

	// --- Start notification-event consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for notification events...")
		messageHandlerFunc := func(msg amqp.Delivery) error {
			log.Printf("Notification event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeNotificationEvents(messageHandlerFunc); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newStores selects the repository implementations for the configured driver.
func newStores(driver, dsn string) (*stores, error) {
	switch driver {
	case "memory":
		return &stores{
			users:         repositories.NewMemoryUserRepository(),
			swaps:         repositories.NewMemorySwapRequestRepository(),
			messages:      repositories.NewMemoryMessageRepository(),
			notifications: repositories.NewMemoryNotificationRepository(),
		}, nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, err
		}
		return newGORMStores(db)
	case "postgres":
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, err
		}
		return newGORMStores(db)
	default:
		log.Printf("Unknown DB_DRIVER %q, falling back to memory", driver)
		return newStores("memory", dsn)
	}
}

func newGORMStores(db *gorm.DB) (*stores, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.SwapRequest{},
		&models.Message{},
		&models.Notification{},
	)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:         repositories.NewGORMUserRepository(db),
		swaps:         repositories.NewGORMSwapRequestRepository(db),
		messages:      repositories.NewGORMMessageRepository(db),
		notifications: repositories.NewGORMNotificationRepository(db),
	}, nil
}

// seedDemoUsers populates the user store with demo members and one admin when
// the store is empty.
func seedDemoUsers(repo repositories.UserRepository) {
	existing, err := repo.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	demoUsers := []models.User{
		{
			Name:          "John Doe",
			Email:         "john@example.com",
			Password:      "password123",
			Location:      "New York, NY",
			SkillsOffered: []string{"JavaScript", "React", "Web Development"},
			SkillsWanted:  []string{"Graphic Design", "Photography"},
			Availability:  []string{"weekends", "evenings"},
			IsPublic:      true,
			Rating:        4.5,
			TotalSwaps:    12,
			Role:          models.RoleUser,
		},
		{
			Name:          "Jane Smith",
			Email:         "jane@example.com",
			Password:      "password123",
			Location:      "Los Angeles, CA",
			SkillsOffered: []string{"Graphic Design", "Photoshop", "Illustration"},
			SkillsWanted:  []string{"Cooking", "Spanish"},
			Availability:  []string{"weekends"},
			IsPublic:      true,
			Rating:        4.8,
			TotalSwaps:    8,
			Role:          models.RoleUser,
		},
		{
			Name:          "Mike Johnson",
			Email:         "mike@example.com",
			Password:      "password123",
			Location:      "Chicago, IL",
			SkillsOffered: []string{"Cooking", "Baking", "Italian Cuisine"},
			SkillsWanted:  []string{"Excel", "Data Analysis"},
			Availability:  []string{"evenings", "weekdays"},
			IsPublic:      true,
			Rating:        4.2,
			TotalSwaps:    15,
			Role:          models.RoleUser,
		},
		{
			Name:          "Admin User",
			Email:         "admin@skillswap.com",
			Password:      "admin123",
			Location:      "San Francisco, CA",
			SkillsOffered: []string{"Project Management", "Leadership"},
			SkillsWanted:  []string{"Technical Skills"},
			Availability:  []string{"weekdays"},
			IsPublic:      true,
			Rating:        5.0,
			TotalSwaps:    25,
			Role:          models.RoleAdmin,
		},
	}

	for i := range demoUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoUsers[i].Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing demo password for %s: %v", demoUsers[i].Email, err)
			continue
		}
		demoUsers[i].Password = string(hashed)
		if err := repo.Create(&demoUsers[i]); err != nil {
			log.Printf("Error seeding user %s: %v", demoUsers[i].Email, err)
		} else {
			log.Printf("Seeded user: %s (ID: %s)", demoUsers[i].Email, demoUsers[i].ID)
		}
	}
}
