package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"gharBack/internal/cache"
	"gharBack/internal/config"
	"gharBack/internal/handlers"
	"gharBack/internal/render"
	"gharBack/internal/repositories"
	"gharBack/internal/services"
	"gharBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	tokenManager *utils.Manager
	accessTTL    time.Duration
	uploadDir    string

	userRepo *repositories.UserRepository

	pageHandler    *handlers.PageHandler
	listingHandler *handlers.ListingHandler
	contactHandler *handlers.ContactHandler
	userHandler    *handlers.UserHandler
	apiHandler     *handlers.APIHandler

	db *sql.DB
}

func initializeApp(cfg config.Config, db *sql.DB, redisClient *redis.Client, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	accessTTL := time.Duration(cfg.Auth.AccessTTLMinutes) * time.Minute
	refreshTTL := time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour

	engine, err := render.NewEngine(cfg.Templates.Dir)
	if err != nil {
		return nil, err
	}

	storage := &utils.Storage{UploadDir: cfg.Storage.UploadsDir}
	if cfg.Storage.S3.Enabled {
		storage.S3 = &utils.S3Config{
			Bucket:    cfg.Storage.S3.Bucket,
			Region:    cfg.Storage.S3.Region,
			Endpoint:  cfg.Storage.S3.Endpoint,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
			BaseURL:   cfg.Storage.S3.BaseURL,
		}
	}

	var listingCache *cache.ListingCache
	if redisClient != nil {
		listingCache = cache.NewListingCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	}

	// Repositories
	listingRepo := repositories.ListingRepository{DB: db}
	realtorRepo := repositories.RealtorRepository{DB: db}
	contactRepo := repositories.ContactRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}

	// Services
	listingService := &services.ListingService{ListingRepo: &listingRepo, Cache: listingCache, Images: storage}
	realtorService := &services.RealtorService{RealtorRepo: &realtorRepo, Images: storage}
	contactService := &services.ContactService{ContactRepo: &contactRepo, ListingRepo: &listingRepo}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		AccessTTL:    accessTTL,
		RefreshTTL:   refreshTTL,
	}

	// Handlers
	pageHandler := &handlers.PageHandler{
		Listings: listingService,
		Realtors: realtorService,
		Contacts: contactService,
		Users:    userService,
		Render:   engine,
	}
	listingHandler := &handlers.ListingHandler{
		Service: listingService,
		Users:   userService,
		Render:  engine,
		Storage: storage,
	}
	contactHandler := &handlers.ContactHandler{Service: contactService}
	userHandler := &handlers.UserHandler{
		Service:    userService,
		Render:     engine,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
	apiHandler := &handlers.APIHandler{Service: listingService}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		tokenManager:   tokenManager,
		accessTTL:      accessTTL,
		uploadDir:      cfg.Storage.UploadsDir,
		userRepo:       &userRepo,
		pageHandler:    pageHandler,
		listingHandler: listingHandler,
		contactHandler: contactHandler,
		userHandler:    userHandler,
		apiHandler:     apiHandler,
		db:             db,
	}, nil
}

func openDB(driver, dsn string) (*sql.DB, error) {
	if driver == "" {
		driver = "mysql"
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
