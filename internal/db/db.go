package db

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/eprinting/printshop-backend/internal/config"
)

// Clients bundles the Firebase-backed clients the repositories depend on. They
// are constructed once in main and injected explicitly; no package-level
// singletons.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

func Connect(ctx context.Context, cfg *config.Config) (*Clients, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
	if err != nil {
		return nil, err
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, err
	}
	return &Clients{Firestore: fs, Auth: authClient}, nil
}

func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
