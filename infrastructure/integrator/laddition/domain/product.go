package domain

import "encoding/json"

// ProductRecord est une ligne du catalogue distant L'Addition, telle que
// renvoyée par /dimproduct. Les champs numériques arrivent tantôt en nombre
// tantôt en chaîne selon les versions de l'API, d'où json.Number.
type ProductRecord struct {
	IDProductGlobal json.Number `json:"id_product_global"`
	ProductName     string      `json:"product_name"`
	ProductPrice    json.Number `json:"product_price"`
	IDProductType   json.Number `json:"id_product_type"`
	ProductType     string      `json:"product_type"`
	IDCategory      string      `json:"id_category"`
	CategoryName    string      `json:"category_name"`
	Category1       string      `json:"category1"`
	Category2       string      `json:"category2"`
	TaxName         string      `json:"tax_name"`
	PlaceSendName   string      `json:"place_send_name"`
	Visible         int         `json:"visible"`
	Removed         int         `json:"removed"`
}

// ProductPage est une page du catalogue distant.
type ProductPage struct {
	LastPage int             `json:"lastPage"`
	Data     []ProductRecord `json:"data"`
}
