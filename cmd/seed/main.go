package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/eprinting/printshop-backend/internal/config"
	"github.com/eprinting/printshop-backend/internal/db"
	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/repository"
)

// Seeds a demo print shop with a starter paper catalog. The owner account must
// already exist in the auth project; pass its uid via SEED_OWNER_UID.

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	ownerUID := os.Getenv("SEED_OWNER_UID")
	if ownerUID == "" {
		return fmt.Errorf("SEED_OWNER_UID is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	clients, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect firebase: %w", err)
	}
	defer clients.Close()

	shops := repository.NewShopRepository(clients.Firestore)
	users := repository.NewUserRepository(clients.Firestore)

	if existing, err := shops.FindByOwner(ctx, ownerUID); err == nil {
		log.Printf("shop %q already exists for owner %s; skipping seed", existing.ShopName, ownerUID)
		return nil
	} else if err != repository.ErrShopNotFound {
		return fmt.Errorf("lookup shop: %w", err)
	}

	shop := &model.Shop{
		ShopName:     "Quick Print",
		ShopLocation: "Session Road",
		OwnerID:      ownerUID,
		PaperOptions: []model.PaperOption{
			{Type: "Glossy", Size: "A4", PriceBW: 2.0, PriceColored: 5.0},
			{Type: "Matte", Size: "A4", PriceBW: 1.5, PriceColored: 4.0},
			{Type: "Bond", Size: "Letter", PriceBW: 1.0, PriceColored: 3.0},
		},
	}
	shopID, err := shops.Create(ctx, shop)
	if err != nil {
		return fmt.Errorf("create shop: %w", err)
	}
	log.Printf("created shop %s (%s)", shop.ShopName, shopID)

	err = users.Set(ctx, ownerUID, map[string]interface{}{
		"name":          "Quick Print Owner",
		"email":         "",
		"gcash":         "",
		"role":          string(model.RoleOwner),
		"contactNumber": "",
		"shopName":      shop.ShopName,
		"shopLocation":  shop.ShopLocation,
	})
	if err != nil {
		return fmt.Errorf("write owner profile: %w", err)
	}
	log.Printf("seed complete")
	return nil
}
