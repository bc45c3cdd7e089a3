package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bhushankhairnar-QA/giftshop/internal/cart"
	"github.com/bhushankhairnar-QA/giftshop/internal/checkout"
	"github.com/bhushankhairnar-QA/giftshop/internal/config"
	"github.com/bhushankhairnar-QA/giftshop/internal/content"
	h "github.com/bhushankhairnar-QA/giftshop/internal/http"
	"github.com/bhushankhairnar-QA/giftshop/internal/notify"
	"github.com/bhushankhairnar-QA/giftshop/internal/storage"
	"github.com/bhushankhairnar-QA/giftshop/internal/wishlist"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	backend, cleanup, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open storage backend %q: %v", cfg.StorageBackend, err)
	}
	defer cleanup()

	contentClient := content.NewClient(content.Config{
		BaseURL:       cfg.ContentBaseURL,
		APIKey:        cfg.ContentAPIKey,
		DeliveryToken: cfg.ContentDeliveryToken,
		Environment:   cfg.ContentEnvironment,
	})

	cartStore := cart.New(ctx, backend, cfg.CartStorageKey)
	wishlistStore := wishlist.New(ctx, backend, cfg.WishlistKey)

	mailer := notify.NewWebhookMailer(cfg.EmailWebhookURL)
	checkoutService := checkout.NewService(cartStore, mailer)

	contentHandler := h.NewContentHandler(contentClient, cfg.RequestTimeout)
	cartHandler := h.NewCartHandler(cartStore)
	wishlistHandler := h.NewWishlistHandler(wishlistStore)
	checkoutHandler := h.NewCheckoutHandler(checkoutService, contentClient, cfg.RequestTimeout)

	router := h.NewRouter(contentHandler, cartHandler, wishlistHandler, checkoutHandler, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s (storage: %s)", cfg.HTTPPort, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

// openStorage selects the persistence backend for the cart and wishlist
// collections. The returned cleanup closes any client connections.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), noop, nil

	case "file":
		store, err := storage.NewFileStore(cfg.StorageDir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Printf("failed to close redis client: %v", err)
			}
		}
		return storage.NewRedisStore(client), cleanup, nil

	case "mongo":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, noop, err
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("failed to disconnect mongo client: %v", err)
			}
		}
		return storage.NewMongoStore(client, cfg.MongoDatabase), cleanup, nil

	default:
		return nil, noop, errors.New("unknown storage backend: " + cfg.StorageBackend)
	}
}
