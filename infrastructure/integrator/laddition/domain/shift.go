package domain

import "encoding/json"

// ShiftDocument est un document de service côté caisse : un passage
// ouverture/fermeture avec son chiffre d'affaires hors taxe.
type ShiftDocument struct {
	ID              json.Number `json:"id"`
	OpeningDate     string      `json:"opening_date"`
	ClosingDate     string      `json:"closing_date"`
	AmountTotalEVAT float64     `json:"amount_total_evat"`
}

type ShiftDocumentsResponse struct {
	Data []ShiftDocument `json:"data"`
}

// SalesDocumentLine est une ligne de vente rattachée à un ShiftDocument.
type SalesDocumentLine struct {
	IDProduct       json.Number `json:"id_product"`
	ProductName     string      `json:"product_name"`
	ProductType     string      `json:"product_type"`
	CategoryName    string      `json:"category_name"`
	AmountTotalEVAT float64     `json:"amount_total_evat"`
	TimestampLocale string      `json:"timestamp_locale"`
}

// SalesLinePage est une page de lignes de vente.
type SalesLinePage struct {
	LastPage int                 `json:"lastPage"`
	Data     []SalesDocumentLine `json:"data"`
}
