package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"foodorder/cmd"
	inhttp "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/reviewrepo"
	"foodorder/internal/adapters/out/postgres/storerepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/tokens"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	issuer := createTokenIssuer(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		issuer,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOrderStatsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, issuer, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		JWTTTL:     goDotEnvVariable("JWT_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&storerepo.StoreDTO{},
		&menurepo.MenuDTO{},
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func createTokenIssuer(configs cmd.Config) *tokens.Issuer {
	ttl, err := time.ParseDuration(configs.JWTTTL)
	if err != nil {
		log.Fatalf("Invalid JWT_TTL value: %v", err)
	}

	issuer, err := tokens.NewIssuer(configs.JWTSecret, ttl)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	return issuer
}

func startWebServer(app cmd.CompositionRoot, issuer *tokens.Issuer, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := inhttp.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateStoreCommandHandler(),
		app.CreateCreateMenuCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCreateReviewCommandHandler(),
		app.CreateSignInQueryHandler(),
		app.CreateGetCustomerOrderQueryHandler(),
		app.CreateGetOwnerOrderQueryHandler(),
		app.CreateGetStoresQueryHandler(),
		app.CreateGetStoreReviewsQueryHandler(),
	)
	server.RegisterRoutes(e, inhttp.AuthJWT(issuer))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
