// cmd/seed/main.go
//
// Seeds the foods collection with starter catalog items, skipping names that
// already exist. Intended for fresh projects and local emulators:
//
//	FIRESTORE_PROJECT_ID=... go run ./cmd/seed
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	fsrepo "foodcourt/internal/adapters/out/firestore"
	fooddom "foodcourt/internal/domain/food"
	"foodcourt/internal/infra/config"
	firestoreinfra "foodcourt/internal/infra/firestore"
)

type seedFood struct {
	name, image, rating, favorites, price, details string
}

var seeds = []seedFood{
	{
		name:      "Cheese Vegetable Pizza",
		image:     "https://example.com/cheese-vegetable-pizza.jpg",
		rating:    "5.0",
		favorites: "1.2k",
		price:     "239,000 đ",
		details:   "Delicious cheese vegetable pizza with fresh ingredients...",
	},
	{
		name:      "Spicy Chicken Burger",
		image:     "https://example.com/spicy-chicken-burger.jpg",
		rating:    "4.5",
		favorites: "900",
		price:     "159,000 đ",
		details:   "Juicy spicy chicken burger with fresh lettuce and sauce...",
	},
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	fsw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		log.Fatalf("[seed] firestore init failed: %v", err)
	}
	defer func() { _ = fsw.Close() }()

	repo := fsrepo.NewFoodRepositoryFS(fsw.Client)

	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("[seed] list failed: %v", err)
	}
	byName := map[string]bool{}
	for _, f := range existing {
		byName[f.Name] = true
	}

	now := time.Now().UTC()
	added := 0
	for _, s := range seeds {
		if byName[s.name] {
			log.Printf("[seed] exists, skipping: %s", s.name)
			continue
		}

		f, err := fooddom.New(uuid.NewString(), s.name, s.image, s.rating, s.favorites, s.price, s.details, now)
		if err != nil {
			log.Fatalf("[seed] invalid seed %q: %v", s.name, err)
		}
		if err := repo.Upsert(ctx, f); err != nil {
			log.Fatalf("[seed] upsert failed %q: %v", s.name, err)
		}
		log.Printf("[seed] added: %s (%s)", f.Name, f.ID)
		added++
	}

	log.Printf("[seed] done: %d added, %d skipped", added, len(seeds)-added)
}
