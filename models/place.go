package models

import "github.com/google/uuid"

// SocialMedia holds the optional social links of a place. Absent links
// stay nil and are omitted from responses.
type SocialMedia struct {
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// Place is one entry of the places directory. The collection is read-only
// for this service; rows are maintained by the backend.
type Place struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Description  *string      `json:"description,omitempty" db:"description"`
	Address      *string      `json:"address,omitempty" db:"address"`
	OwnerName    *string      `json:"owner_name,omitempty" db:"owner_name"`
	OpeningHours *string      `json:"opening_hours,omitempty" db:"opening_hours"`
	EntranceFee  *string      `json:"entrance_fee,omitempty" db:"entrance_fee"`
	Phone        *string      `json:"phone,omitempty" db:"phone"`
	Whatsapp     *string      `json:"whatsapp,omitempty" db:"whatsapp"`
	Website      *string      `json:"website,omitempty" db:"website"`
	SocialMedia  *SocialMedia `json:"social_media,omitempty" db:"social_media"`
	MapsURL      *string      `json:"maps_url,omitempty" db:"maps_url"`
	Image        *string      `json:"image,omitempty" db:"image"`
}

// PlaceColumns is the column set read from the places collection.
var PlaceColumns = []string{
	"id", "name", "description", "address", "owner_name", "opening_hours",
	"entrance_fee", "phone", "whatsapp", "website", "social_media",
	"maps_url", "image",
}

// Normalize drops empty-string fields so a card affordance only appears
// when the backing field carries a value.
func (p *Place) Normalize() {
	p.Description = dropEmpty(p.Description)
	p.Address = dropEmpty(p.Address)
	p.OwnerName = dropEmpty(p.OwnerName)
	p.OpeningHours = dropEmpty(p.OpeningHours)
	p.EntranceFee = dropEmpty(p.EntranceFee)
	p.Phone = dropEmpty(p.Phone)
	p.Whatsapp = dropEmpty(p.Whatsapp)
	p.Website = dropEmpty(p.Website)
	p.MapsURL = dropEmpty(p.MapsURL)
	p.Image = dropEmpty(p.Image)

	if p.SocialMedia != nil {
		p.SocialMedia.Facebook = dropEmpty(p.SocialMedia.Facebook)
		p.SocialMedia.Instagram = dropEmpty(p.SocialMedia.Instagram)
		if p.SocialMedia.Facebook == nil && p.SocialMedia.Instagram == nil {
			p.SocialMedia = nil
		}
	}
}

func dropEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
