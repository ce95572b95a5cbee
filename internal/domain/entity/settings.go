package entity

// SiteSettings is the admin-editable storefront configuration.
type SiteSettings struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	PrimaryColor string `json:"primaryColor"`
	IsClosed     bool   `json:"isClosed"`
}
