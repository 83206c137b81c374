package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rizkyfm/job-board-api/internal/config"
	"github.com/rizkyfm/job-board-api/internal/domain/fiber/handler"
	"github.com/rizkyfm/job-board-api/internal/middleware"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/repository"
	"github.com/rizkyfm/job-board-api/internal/service"
	"github.com/rizkyfm/job-board-api/internal/usecase"
	"github.com/rizkyfm/job-board-api/internal/util"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 20 * 1024 * 1024, // multipart submissions carry up to two documents
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return ctx.Status(fe.Code).JSON(fiber.Map{
					"success": false,
					"message": fe.Message,
				})
			}
			return util.ErrorResponse(ctx, err)
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	tokens := service.NewTokenService()
	storage, err := service.NewStorageService()
	if err != nil {
		logrus.Fatal(err)
	}

	jobUC := usecase.NewJobUsecase(jobRepo)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, storage)
	authUC := usecase.NewAuthUsecase(candidateRepo, companyRepo, tokens)

	requireAuth := middleware.Auth(tokens)
	requireCandidate := middleware.RequireRole(model.RoleCandidate)
	requireCompany := middleware.RequireRole(model.RoleCompany)

	handler.NewAuthHandler(authUC).RegisterRoutes(app, requireAuth)
	handler.NewJobHandler(jobUC).RegisterRoutes(app, requireAuth, requireCompany)
	handler.NewApplicationHandler(appUC).RegisterRoutes(app, requireAuth, requireCandidate, requireCompany)
	handler.NewUploadHandler(storage).RegisterRoutes(app, requireAuth, requireCandidate, requireCompany)

	logrus.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		logrus.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	// TranslateError turns the driver's unique-violation into
	// gorm.ErrDuplicatedKey, which the submission workflow depends on to spot
	// the loser of a duplicate-application race.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`)

	err = db.AutoMigrate(&model.Candidate{}, &model.Company{}, &model.Job{}, &model.Application{})
	if err != nil {
		logrus.Fatal("migration failed: ", err)
	}

	// Expression index backing the free-text search predicate in the job
	// listing query.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_jobs_search ON jobs
		USING gin (to_tsvector('english', title || ' ' || description || ' ' || company))`)

	return db
}
