package request

// UpdateSettingsRequest updates the storefront site settings. Omitted
// fields are left unchanged.
type UpdateSettingsRequest struct {
	HeroTitle    *string `json:"heroTitle"`
	HeroSubtitle *string `json:"heroSubtitle"`
	PrimaryColor *string `json:"primaryColor"`
	IsClosed     *bool   `json:"isClosed"`
}
