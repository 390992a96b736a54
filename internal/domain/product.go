package domain

import "fmt"

// Product est une entrée du menu, synchronisée depuis le catalogue L'Addition.
// UniqIDProduct est l'identifiant naturel côté caisse : c'est la seule clé de
// jointure entre le catalogue distant et le catalogue local.
type Product struct {
	ID            int64   `json:"id"`
	UniqIDProduct string  `json:"uniq_id_product"`
	ProductName   string  `json:"product_name"`
	ProductPrice  float64 `json:"product_price"`
	IDProductType int     `json:"id_product_type"`
	ProductType   string  `json:"product_type"`
	IDCategory    string  `json:"id_category"`
	CategoryName  string  `json:"category_name"`
	Category1     string  `json:"category1"`
	Category2     string  `json:"category2"`
	TaxName       string  `json:"tax_name"`
	PlaceSendName string  `json:"place_send_name"`
	Visible       bool    `json:"visible"`
	Removed       bool    `json:"removed"`
}

// Catégories grossières utilisées pour ventiler le chiffre d'affaires.
const (
	CategorySolid  = "solid"
	CategoryLiquid = "liquid"
)

func (p *Product) IDStr() string {
	return fmt.Sprintf("<PRODUCT --> id : %s - name : %s>", p.UniqIDProduct, p.ProductName)
}
