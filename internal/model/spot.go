package model

// Spot is one fixed waypoint on the tour route.
type Spot struct {
	ID          int64             `json:"id"`
	PlaceID     string            `json:"place_id"`
	Code        string            `json:"code"`
	NameEN      string            `json:"name_en"`
	Names       map[string]string `json:"names,omitempty"`
	OrderNo     int               `json:"order_no"`
	Lat         *float64          `json:"lat,omitempty"`
	Lng         *float64          `json:"lng,omitempty"`
	IsPhotoSpot bool              `json:"is_photo_spot"`
}

// Name returns the display name for lang, falling back to English.
func (s *Spot) Name(lang string) string {
	if name, ok := s.Names[lang]; ok && name != "" {
		return name
	}
	return s.NameEN
}
