// internal/infra/firebase/client.go
package firebaseinfra

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AuthWrapper owns the Firebase app and its Auth client.
type AuthWrapper struct {
	App  *firebase.App
	Auth *firebaseauth.Client
}

// NewAuth initializes Firebase Auth for token verification.
// With an empty credentialsFile, ADC is used.
func NewAuth(ctx context.Context, projectID string, credentialsFile string) (*AuthWrapper, error) {
	fbCfg := &firebase.Config{ProjectID: projectID}

	var (
		app *firebase.App
		err error
	)
	if credentialsFile != "" {
		app, err = firebase.NewApp(ctx, fbCfg, option.WithCredentialsFile(credentialsFile))
	} else {
		app, err = firebase.NewApp(ctx, fbCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase app: %w", err)
	}

	auth, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	log.Printf("[firebase] auth ready (project: %s)", projectID)
	return &AuthWrapper{App: app, Auth: auth}, nil
}
