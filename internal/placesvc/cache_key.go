package placesvc

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	DataKeyPrefix  = "google-place/"
	PhotoKeyPrefix = "google-place-photo/"
)

// DataKey is the object key of a cached place record. Place ids are safe keys as-is.
func DataKey(placeID string) string {
	return DataKeyPrefix + placeID
}

// PhotoKey is the object key of a cached photo. References can be long and carry
// slashes, so they are collapsed to their SHA-256 hex digest.
func PhotoKey(photoReference string) string {
	sum := sha256.Sum256([]byte(photoReference))
	return PhotoKeyPrefix + hex.EncodeToString(sum[:])
}
