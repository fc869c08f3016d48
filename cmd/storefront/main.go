package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/karyatoko/storefront/internal/auth"
	cartapp "github.com/karyatoko/storefront/internal/cart/app"
	cartrest "github.com/karyatoko/storefront/internal/cart/infra/rest"
	catalogrest "github.com/karyatoko/storefront/internal/catalog/infra/rest"
	"github.com/karyatoko/storefront/internal/storage"
	wishlistapp "github.com/karyatoko/storefront/internal/wishlist/app"
	"github.com/karyatoko/storefront/pkg/config"
	"github.com/karyatoko/storefront/pkg/logger"
	"github.com/karyatoko/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	kv := storage.NewMemoryStore()
	tokens := auth.NewTokenStore(kv)
	if tok := os.Getenv("STORE_API_TOKEN"); tok != "" {
		tokens.SetToken(tok)
	}

	remote := cartrest.NewClient(cfg.StoreAPIURL, cfg.HTTPTimeout, tokens)
	lookup := catalogrest.NewLookup(cfg.StoreAPIURL, cfg.HTTPTimeout)

	cart := cartapp.NewService(cartapp.NewCartStore(), remote, lookup, log)
	wishlist := wishlistapp.NewStore(kv, log)

	fetchCtx, fetchCancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
	snap, err := cart.FetchCartItems(fetchCtx)
	fetchCancel()
	if err != nil {
		log.Warn("initial cart fetch failed", slog.Any("err", err))
	} else {
		log.Info("cart loaded", slog.Int("items", len(snap.Items)))
	}
	log.Info("wishlist loaded", slog.Int("items", len(wishlist.List())))

	<-ctx.Done()
	log.Info("bye")
}
