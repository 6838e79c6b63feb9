package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"mytask-backend/pkg/config"
)

// Clients bundles the Firebase-backed service clients the app depends on
type Clients struct {
	App       *firebase.App
	Firestore *firestore.Client
	Auth      *auth.Client
}

// NewFirebaseClients initializes the Firebase app plus Firestore and Auth
// clients from the configured project and optional credentials file.
func NewFirebaseClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentials))
	}

	var conf *firebase.Config
	if cfg.FirebaseProjectID != "" {
		conf = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	return &Clients{App: app, Firestore: fs, Auth: authClient}, nil
}

// Close releases the underlying Firestore connection
func (c *Clients) Close() error {
	return c.Firestore.Close()
}
