package main

import (
	_ "Backend-Masons-Leads/docs"
	"Backend-Masons-Leads/src/config"
	"Backend-Masons-Leads/src/controllers"
	"Backend-Masons-Leads/src/database"
	"Backend-Masons-Leads/src/jobs"
	"Backend-Masons-Leads/src/middleware"
	"Backend-Masons-Leads/src/routes"
	"Backend-Masons-Leads/src/services/admins"
	"Backend-Masons-Leads/src/services/leads"
	"Backend-Masons-Leads/src/services/photos"
	"Backend-Masons-Leads/src/services/sheets"
	"Backend-Masons-Leads/src/utils"
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// เชื่อมต่อกับ MongoDB
	mongoClient, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	db := mongoClient.Database(cfg.MongoDB)

	photoSvc := photos.NewService(
		photos.NewGridFSStore(db, cfg.PhotosBucket),
		photos.NewMongoFolderRepository(db.Collection(cfg.PhotosCollection)),
	)

	// Missing Google credentials are reported per submission, not at boot.
	values, err := sheets.NewGoogleValues(ctx, cfg.Google)
	if err != nil {
		log.Println("⚠️ Google Sheets not available:", err)
	}
	sheetSvc := sheets.NewService(values)

	deps := leads.Deps{
		SpreadsheetID: cfg.Google.SpreadsheetID,
		Checker:       sheetSvc,
		Appender:      sheetSvc,
		Photos:        photoSvc,
	}

	redisClient, err := database.InitRedis(ctx, cfg.RedisURI)
	if err != nil {
		log.Println("⚠️", err)
	}
	if redisClient != nil {
		deps.Claims = leads.NewRedisClaims(redisClient, cfg.DedupeClaimTTL)
	}

	if asynqClient := database.InitAsynq(cfg.RedisURI, redisClient != nil); asynqClient != nil {
		deps.Archiver = jobs.NewArchiveEnqueuer(asynqClient)
		startArchiveWorker(ctx, cfg.RedisURI, db.Collection(cfg.LeadsCollection))
	}

	handlers := routes.Handlers{
		Leads:          controllers.NewLeadController(leads.NewService(deps)),
		Photos:         controllers.NewPhotoController(photoSvc),
		PhotosPassword: cfg.PhotosPassword,
	}
	if issuer, err := utils.NewTokenIssuer(cfg.JWTSecret); err != nil {
		log.Println("⚠️ Admin login disabled:", err)
	} else {
		handlers.Tokens = middleware.TokenParser(issuer)
		handlers.Auth = controllers.NewAuthController(admins.NewService(cfg.AdminCredentials, issuer))
	}

	// สร้าง app instance
	app := fiber.New(fiber.Config{BodyLimit: 50 * 1024 * 1024})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, handlers)

	log.Println("Server is running on port " + cfg.AppURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		log.Fatal(err)
	}
}

// startArchiveWorker runs the lead:archive consumer next to the HTTP server.
func startArchiveWorker(ctx context.Context, redisURI string, leadsColl *mongo.Collection) {
	if err := database.EnsureLeadIndexes(ctx, leadsColl); err != nil {
		log.Println("⚠️ leads index:", err)
	}

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisURI}, asynq.Config{Concurrency: 2})
	mux := asynq.NewServeMux()
	jobs.RegisterHandlers(mux, leadsColl)

	if err := srv.Start(mux); err != nil {
		log.Println("⚠️ Archive worker not started:", err)
		return
	}
	log.Println("✅ Archive worker started")
}
