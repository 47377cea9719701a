package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlaceRecord is the subset of a Places API (v1) place resource the application
// consumes. ID is the only required field.
type PlaceRecord struct {
	ID                  string          `json:"id"`
	Types               []string        `json:"types,omitempty"`
	Reviews             []Review        `json:"reviews,omitempty"`
	DisplayName         *LocalizedText  `json:"displayName,omitempty"`
	FormattedAddress    string          `json:"formattedAddress,omitempty"`
	Rating              float64         `json:"rating,omitempty"`
	Location            *LatLng         `json:"location,omitempty"`
	Photos              []Photo         `json:"photos,omitempty"`
	WebsiteURI          string          `json:"websiteUri,omitempty"`
	EditorialSummary    *LocalizedText  `json:"editorialSummary,omitempty"`
	CurrentOpeningHours *OpeningHours   `json:"currentOpeningHours,omitempty"`
	GoogleMapsURI       string          `json:"googleMapsUri,omitempty"`
	GoogleMapsLinks     json.RawMessage `json:"googleMapsLinks,omitempty"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Review struct {
	Name                           string             `json:"name,omitempty"`
	RelativePublishTimeDescription string             `json:"relativePublishTimeDescription,omitempty"`
	Rating                         float64            `json:"rating,omitempty"`
	Text                           *LocalizedText     `json:"text,omitempty"`
	OriginalText                   *LocalizedText     `json:"originalText,omitempty"`
	AuthorAttribution              *AuthorAttribution `json:"authorAttribution,omitempty"`
	PublishTime                    string             `json:"publishTime,omitempty"`
}

// Photo is a photo reference on a place. Name ("places/{id}/photos/{ref}") is
// the value passed to the photo cache.
type Photo struct {
	Name               string              `json:"name"`
	WidthPx            int                 `json:"widthPx,omitempty"`
	HeightPx           int                 `json:"heightPx,omitempty"`
	AuthorAttributions []AuthorAttribution `json:"authorAttributions,omitempty"`
}

type AuthorAttribution struct {
	DisplayName string `json:"displayName,omitempty"`
	URI         string `json:"uri,omitempty"`
	PhotoURI    string `json:"photoUri,omitempty"`
}

type OpeningHours struct {
	OpenNow             *bool    `json:"openNow,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

// PlaceFieldMask lists the fields requested from the details endpoint.
var PlaceFieldMask = []string{
	"id",
	"types",
	"reviews",
	"displayName",
	"formattedAddress",
	"rating",
	"location",
	"photos",
	"websiteUri",
	"editorialSummary",
	"currentOpeningHours",
	"googleMapsUri",
	"googleMapsLinks",
}

func FieldMask() string {
	return strings.Join(PlaceFieldMask, ",")
}

// ParsePlaceRecord decodes a stored or fetched place payload.
func ParsePlaceRecord(b []byte) (PlaceRecord, error) {
	var p PlaceRecord
	if err := json.Unmarshal(b, &p); err != nil {
		return PlaceRecord{}, fmt.Errorf("%w: %v", ErrMalformedPlace, err)
	}

	if p.ID == "" {
		return PlaceRecord{}, fmt.Errorf("%w: missing id", ErrMalformedPlace)
	}

	return p, nil
}
