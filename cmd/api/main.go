package main

import (
	"io"
	"log"
	"os"

	"github.com/artistdesk/artistdesk-api/internal/config"
	"github.com/artistdesk/artistdesk-api/internal/logging"
	"github.com/artistdesk/artistdesk-api/internal/media"
	miniostore "github.com/artistdesk/artistdesk-api/internal/repository/minio"
	"github.com/artistdesk/artistdesk-api/internal/repository/postgres"
	"github.com/artistdesk/artistdesk-api/internal/service"
	transporthttp "github.com/artistdesk/artistdesk-api/internal/transport/http"
	"github.com/artistdesk/artistdesk-api/internal/transport/mail"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	tokens, err := util.NewJWTManager(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatalf("configure jwt: %v", err)
	}

	users := postgres.NewUserRepo(db)
	resets := postgres.NewPasswordResetRepo(db)
	profiles := postgres.NewProfileRepo(db)
	contracts := postgres.NewContractRepo(db)
	events := postgres.NewEventRepo(db)
	accommodations := postgres.NewAccommodationRepo(db)

	mailer := mail.NewPasswordResetMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPUseTLS)

	authService := service.NewAuthService(users, resets, tokens, mailer, cfg.AccessTokenTTL)
	userService := service.NewUserService(users, profiles, contracts)
	profileService := service.NewProfileService(profiles)
	contractService := service.NewContractService(contracts, users)
	eventService := service.NewEventService(events, contracts)
	accommodationService := service.NewAccommodationService(accommodations)

	e := transporthttp.NewRouter(cfg.AllowOrigins)

	transporthttp.RegisterAuth(e, authService, cfg.FrontendBaseURL)
	transporthttp.RegisterUsers(e, authService, userService)
	transporthttp.RegisterProfiles(e, authService, profileService)
	transporthttp.RegisterContracts(e, authService, contractService)
	transporthttp.RegisterEvents(e, authService, eventService)
	transporthttp.RegisterAccommodations(e, authService, accommodationService)
	transporthttp.RegisterSwagger(e, cfg.SwaggerSpecPath)

	if cfg.MinIOEndpoint != "" {
		client, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatalf("connect minio: %v", err)
		}
		storage := miniostore.NewMediaStorage(client, cfg.MinIOEndpoint, cfg.MinIOPublicURL, cfg.MinIOUseSSL)
		uploadService := service.NewUploadService(storage, media.NewProcessor(0), cfg.MinIOBucket)
		transporthttp.RegisterUploads(e, authService, uploadService)
	} else {
		log.Println("uploads disabled: MINIO_ENDPOINT not set")
	}

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
