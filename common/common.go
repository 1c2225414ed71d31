package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project the service runs in.
	ProjectID string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "masjid-suite-prod"

	// TestProjectID is the project used by tests that construct real clients.
	TestProjectID = "masjid-suite-dev"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", TestProjectID)
	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Production = ProjectID == productionProject
}

// GetEnv returns the value of the environment variable key, or fallback if unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
