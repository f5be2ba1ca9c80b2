package domain

// Config holds the GA4 credentials entered by the administrator.
type Config struct {
	PropertyID  string `json:"propertyId"`
	ClientEmail string `json:"clientEmail"`
	PrivateKey  string `json:"privateKey"`
}

// MaskedConfig is the externally visible view. The private key is never
// exposed, only whether one is configured.
type MaskedConfig struct {
	PropertyID  string `json:"propertyId"`
	ClientEmail string `json:"clientEmail"`
	HasKey      bool   `json:"hasKey"`
}

// Summary is the dashboard payload.
type Summary struct {
	Summary              Totals             `json:"summary"`
	WhatsappByDay        []DayClicks        `json:"whatsappByDay"`
	TopConsultedProducts []ConsultedProduct `json:"topConsultedProducts"`
	TopViewedProducts    []ViewedProduct    `json:"topViewedProducts"`
}

type Totals struct {
	SessionsLast7Days       int     `json:"sessionsLast7Days"`
	WhatsappClicksLast7Days int     `json:"whatsappClicksLast7Days"`
	ConversionRateLast7Days float64 `json:"conversionRateLast7Days"`
}

type DayClicks struct {
	Date           string `json:"date"`
	WhatsappClicks int    `json:"whatsappClicks"`
}

type ConsultedProduct struct {
	ProductName       string `json:"productName"`
	ProductCode       string `json:"productCode,omitempty"`
	ConsultsLast7Days int    `json:"consultsLast7Days"`
}

type ViewedProduct struct {
	ProductName    string `json:"productName"`
	ProductCode    string `json:"productCode,omitempty"`
	ViewsLast7Days int    `json:"viewsLast7Days"`
}
