package models

// StoreSettings holds storefront-wide configuration managed via the admin
// panel. A single record exists.
type StoreSettings struct {
	Name             string  `json:"name"`
	Logo             string  `json:"logo"`
	Email            string  `json:"email"`
	WhatsApp         string  `json:"whatsapp"`
	Currency         string  `json:"currency"`
	DefaultLanguage  string  `json:"default_language"` // ar|en
	TaxPercentage    float64 `json:"tax_percentage"`
	Policy           string  `json:"policy"`
	AssistantEnabled bool    `json:"assistant_enabled"`
}
