package cmd

import "time"

// Config carries the environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	CapacityCacheTTL  time.Duration
	ReconcileSchedule string

	EnforceReleasePrecondition bool
	RequireArchiveBeforePurge  bool
}
