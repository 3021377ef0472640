// internal/infra/config/config.go
package config

import "os"

// Config holds environment-driven settings for the whole application.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	GCSBucket string
	GCPCreds  string

	// CartStorage selects the durable cart mirror: "sqlite" (default) or
	// "firestore". The sqlite path is the on-device analog for local runs.
	CartStorage    string
	CartSQLitePath string
}

// Load reads environment variables and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "foodcourt-dev")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		GCSBucket: os.Getenv("GCS_BUCKET"),
		GCPCreds:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		CartStorage:    getenvDefault("CART_STORAGE", "sqlite"),
		CartSQLitePath: getenvDefault("CART_SQLITE_PATH", "carts.db"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
