package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

type alert struct {
	Operation string    `json:"operation"`
	Key       string    `json:"key"`
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	At        time.Time `json:"at"`
}

// Local receiver for NOTIFY_WEBHOOK_URL=http://localhost:8081/alerts
func main() {
	http.HandleFunc("POST /alerts", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var a alert
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("[*] %s %s key=%s error=%q at=%s", a.Operation, a.Message, a.Key, a.Error, a.At.Format(time.RFC3339))
		w.WriteHeader(http.StatusNoContent)
	})

	log.Println("[*] Alert receiver started on :8081")
	log.Fatal(http.ListenAndServe(":8081", nil))
}

// curl example:
// curl -X POST http://localhost:8081/alerts -H "Content-Type: application/json" \
//   -d '{"operation":"photo_fetch","key":"google-place-photo/abc","message":"failed to fetch photo"}'
