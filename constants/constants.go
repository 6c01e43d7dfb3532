package constants

import (
	"os"
	"strconv"
)

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetTJADir() string {
	path := os.Getenv("TJA_PATH")
	if path != "" {
		return path
	}
	return "."
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetDynamoTable() string {
	table := os.Getenv("DYNAMO_TABLE")
	if table != "" {
		return table
	}
	return "tjadex-summaries"
}

// GetRateLimit is the number of API requests allowed per second.
func GetRateLimit() float64 {
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT"), 64); err == nil && v > 0 {
		return v
	}
	return 20
}

const IndexFilename = "index.dat"

// serve refuses new charts past this many
const MaxStoredCharts = 1024

// largest request body serve reads as a chart
const MaxChartBytes = 1 << 20
