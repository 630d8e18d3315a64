package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the portal-side view of the hosted "profiles" collection.
// There is exactly one row per authenticated identity; every field except
// the id is optional and may be absent on the remote row.
type Profile struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Username        *string    `json:"username,omitempty" db:"username"`
	FullName        *string    `json:"full_name,omitempty" db:"full_name"`
	AvatarURL       *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	CoverURL        *string    `json:"cover_url,omitempty" db:"cover_url"`
	ThemePreference *string    `json:"theme_preference,omitempty" db:"theme_preference"`
	CreatedAt       *time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// ProfileColumns is the column set read back from the profiles collection.
var ProfileColumns = []string{
	"id", "username", "full_name", "avatar_url", "cover_url",
	"theme_preference", "created_at", "updated_at",
}

// UpdateProfileRequest carries a partial profile update. A nil field was
// not submitted and must not be touched on the remote row; a pointer to
// the empty string clears the field.
type UpdateProfileRequest struct {
	Username        *string `json:"username" form:"username"`
	FullName        *string `json:"full_name" form:"full_name"`
	AvatarURL       *string `json:"avatar_url" form:"avatar_url"`
	CoverURL        *string `json:"cover_url" form:"cover_url"`
	ThemePreference *string `json:"theme_preference" form:"theme_preference"`
}

// Changes lists only the submitted fields, keyed by column name.
func (r UpdateProfileRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Username != nil {
		changes["username"] = *r.Username
	}
	if r.FullName != nil {
		changes["full_name"] = *r.FullName
	}
	if r.AvatarURL != nil {
		changes["avatar_url"] = *r.AvatarURL
	}
	if r.CoverURL != nil {
		changes["cover_url"] = *r.CoverURL
	}
	if r.ThemePreference != nil {
		changes["theme_preference"] = *r.ThemePreference
	}
	return changes
}
