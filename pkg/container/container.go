package container

import (
	"context"
	"fmt"
	"time"

	"bookreview-backend/internal/config"
	"bookreview-backend/internal/infrastructure/cache"
	"bookreview-backend/internal/infrastructure/database"

	authorHandler "bookreview-backend/internal/domains/author/handler"
	authorRepository "bookreview-backend/internal/domains/author/repository"
	authorService "bookreview-backend/internal/domains/author/service"
	bookHandler "bookreview-backend/internal/domains/book/handler"
	bookRepository "bookreview-backend/internal/domains/book/repository"
	bookService "bookreview-backend/internal/domains/book/service"
	reviewHandler "bookreview-backend/internal/domains/review/handler"
	reviewRepository "bookreview-backend/internal/domains/review/repository"
	reviewService "bookreview-backend/internal/domains/review/service"
	userHandler "bookreview-backend/internal/domains/user/handler"
	userRepository "bookreview-backend/internal/domains/user/repository"
	userService "bookreview-backend/internal/domains/user/service"

	"bookreview-backend/pkg/jwt"
	"bookreview-backend/pkg/logger"
)

// Container wires configuration, infrastructure and the domain layers
// together in dependency order.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache *cache.RedisCache

	Tokens *jwt.Manager

	UserRepo   userRepository.UserRepository
	AuthorRepo authorRepository.AuthorRepository
	BookRepo   bookRepository.BookRepository
	ReviewRepo reviewRepository.ReviewRepository

	UserService   userService.ServiceInterface
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface
	ReviewService reviewService.ServiceInterface

	UserHandler   *userHandler.UserHandler
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	ReviewHandler *reviewHandler.ReviewHandler
}

// New builds the full dependency graph and connects to postgres and redis.
func New(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, err
	}
	logger.Info("connected to postgres", map[string]interface{}{"host": cfg.Database.Host})

	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, err
	}
	logger.Info("connected to redis", map[string]interface{}{"addr": cfg.Redis.Host})

	c.Tokens = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.UserRepo = userRepository.NewPostgresUserRepository(c.DB.Pool)
	c.AuthorRepo = authorRepository.NewPostgresAuthorRepository(c.DB.Pool)
	c.BookRepo = bookRepository.NewPostgresBookRepository(c.DB.Pool)
	c.ReviewRepo = reviewRepository.NewPostgresReviewRepository(c.DB.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.Tokens)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Cache)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.ReviewRepo, c.Cache)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.BookRepo, c.Cache)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)

	return c, nil
}

// Cleanup releases infrastructure connections.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
