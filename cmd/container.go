package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/builder/resume/resumeapi"
	"github.com/smartresume/smartresume/builder/resume/resumeinfra"
	"github.com/smartresume/smartresume/builder/resume/resumesrv"
	"github.com/smartresume/smartresume/builder/resume/worker"
	"github.com/smartresume/smartresume/builder/template"
	"github.com/smartresume/smartresume/builder/user"
	"github.com/smartresume/smartresume/builder/user/userauth"
	"github.com/smartresume/smartresume/builder/user/userinfra"
	"github.com/smartresume/smartresume/builder/user/usersrv"
	"github.com/smartresume/smartresume/internal/resumeparser"
	"github.com/smartresume/smartresume/pkg/fsx"
	"github.com/smartresume/smartresume/pkg/fsx/fsxs3"
	"github.com/smartresume/smartresume/pkg/logx"
)

const importQueueName = "resume:import"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	S3Client   *s3.Client
	FileSystem fsx.FileSystem

	// Services
	TokenService  user.TokenService
	UserService   *usersrv.Service
	ResumeService *resumesrv.Service

	// Queue & worker
	JobQueue     resume.JobQueue
	ImportWorker *worker.ImportWorker

	// API Handlers
	AuthHandlers     *userauth.Handlers
	ResumeHandlers   *resumeapi.ResumeHandlers
	TemplateHandlers *template.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 for uploaded files
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.New(c.S3Client, awsBucket)
}

func (c *Container) initServices() {
	// Repositories
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	jobRepo := resumeinfra.NewPostgresJobRepository(c.DB)

	c.JobQueue = resumeinfra.NewRedisQueue(c.Redis, importQueueName)

	// Token service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = userauth.NewJWTTokenService(jwtSecret, 24*time.Hour, "smartresume")

	// Domain services
	passwordSvc := userauth.NewBcryptPasswordService()
	c.UserService = usersrv.New(userRepo, passwordSvc, c.TokenService)

	extractor := resumeparser.NewExtractor(nil)
	c.ResumeService = resumesrv.New(resumeRepo, jobRepo, c.JobQueue, c.FileSystem, extractor)

	// Background import workers
	workerCount := 3
	c.ImportWorker = worker.NewImportWorker(c.ResumeService, c.JobQueue, workerCount)

	// Handlers
	c.AuthHandlers = userauth.NewHandlers(c.UserService)
	c.ResumeHandlers = resumeapi.NewResumeHandlers(c.ResumeService, c.FileSystem)
	c.TemplateHandlers = template.NewHandlers()
}
