package constants

import "os"

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// GetOutDir is where converted files go when no output path is given.
func GetOutDir() string {
	return getenv("OUT_PATH", "./out")
}

func GetPort() string {
	return getenv("PORT", "8080")
}

func GetDynamoDBEndpoint() string {
	return getenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
}

func GetDynamoDBRegion() string {
	return getenv("DYNAMODB_REGION", "localhost")
}

func GetCatalogTable() string {
	return getenv("CATALOG_TABLE", "rsxml-catalog")
}

// DynamoDB limits per batch request.
const (
	MaxBatchWrite = 25
	MaxBatchGet   = 100
)

// MaxUploadSize bounds request bodies of the HTTP API.
const MaxUploadSize = 32 * 1024 * 1024
