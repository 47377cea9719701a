package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// go run ./cmd/loadtest --target=http://localhost:8080 --rate=50 --duration=30s
//
// A fixed pool of place ids is reused so the run measures a warm cache after
// the first pass.
func main() {
	target := flag.String("target", "http://localhost:8080", "base url of the api")
	freq := flag.Int("rate", 50, "requests per second")
	duration := flag.Duration("duration", 30*time.Second, "test duration")
	pool := flag.Int("places", 200, "number of distinct place ids")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	placeIDs := make([]string, *pool)
	for i := range placeIDs {
		placeIDs[i] = "ChIJ" + strings.ReplaceAll(uuid.New().String(), "-", "")[:23]
	}

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(createTargeter(*target, placeIDs), rate, *duration, "placecache") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Report ===")
	vegeta.NewTextReporter(&metrics).Report(os.Stdout)
}

// createTargeter mixes place batches with photo lookups, roughly four to one.
func createTargeter(base string, placeIDs []string) vegeta.Targeter {
	base = strings.TrimSuffix(base, "/")

	return func(tgt *vegeta.Target) error {
		if gofakeit.Number(1, 5) == 5 {
			id := placeIDs[gofakeit.Number(0, len(placeIDs)-1)]
			ref := fmt.Sprintf("places/%s/photos/photo-%d", id, gofakeit.Number(0, 2))

			tgt.Method = http.MethodGet
			tgt.URL = base + "/cache/google-place/photo/" + url.PathEscape(ref)
			tgt.Body = nil
			tgt.Header = nil
			return nil
		}

		batch := make([]string, gofakeit.Number(1, 10))
		for i := range batch {
			batch[i] = placeIDs[gofakeit.Number(0, len(placeIDs)-1)]
		}

		body, err := json.Marshal(map[string]any{
			"placeIdList":  batch,
			"languageCode": gofakeit.RandomString([]string{"ja", "en"}),
		})
		if err != nil {
			return err
		}

		tgt.Method = http.MethodPost
		tgt.URL = base + "/cache/place"
		tgt.Body = body
		tgt.Header = http.Header{"Content-Type": {"application/json"}}

		return nil
	}
}
