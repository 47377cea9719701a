package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TaskWarmPlaces is the asynq task type that pre-populates the place cache.
const TaskWarmPlaces = "place-cache.warm"

const MaxPlaceBatch = 100

// PlaceBatch is the body of POST /cache/place and the payload of a warm task.
type PlaceBatch struct {
	PlaceIDList  []string `json:"placeIdList"`
	LanguageCode string   `json:"languageCode,omitempty"`
}

var errEmptyPlaceIDList = errors.New("placeIdList is required")

// ValidateLookup checks a synchronous lookup. Blank ids are resolved, and
// dropped, one by one like any other failed id.
func (b PlaceBatch) ValidateLookup() error {
	if len(b.PlaceIDList) == 0 {
		return errEmptyPlaceIDList
	}

	return nil
}

// Validate checks a warm task, which is bounded by MaxPlaceBatch.
func (b PlaceBatch) Validate() error {
	if err := b.ValidateLookup(); err != nil {
		return err
	}

	if len(b.PlaceIDList) > MaxPlaceBatch {
		return fmt.Errorf("placeIdList accepts at most %d ids", MaxPlaceBatch)
	}

	for i, id := range b.PlaceIDList {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("placeIdList[%d] is empty", i)
		}
	}

	return nil
}
