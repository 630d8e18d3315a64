package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// PlacesKey is the query key for the places listing.
func PlacesKey() string {
	return "places_list"
}

// ProfileKey is the query key for one identity's profile.
func ProfileKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile_%s", userID)
}
