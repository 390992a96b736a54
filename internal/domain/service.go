package domain

import (
	"fmt"
	"time"
)

// SaleEvent est une vente unitaire horodatée (montant HT).
type SaleEvent struct {
	Timestamp string  `json:"timestamp"`
	Amount    float64 `json:"amount"`
}

// RankedDrink est une entrée du classement des boissons les plus vendues.
type RankedDrink struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ConcertInfos décrit le concert du soir, tel que résolu depuis SowProg.
// Les champs Facebook et Picture valent "#" quand l'information est absente.
type ConcertInfos struct {
	Title    string `json:"title"`
	Facebook string `json:"facebook"`
	Style    string `json:"style"`
	Free     bool   `json:"free"`
	Picture  string `json:"picture"`
}

// Service est l'agrégat d'un service (une journée d'exploitation, de
// l'ouverture à la fermeture le lendemain matin). Une ligne par date et par
// établissement, les montants arrondis à deux décimales à la persistance.
type Service struct {
	ID             int64                  `json:"id"`
	Company        string                 `json:"company"`
	Date           time.Time              `json:"date"`
	Revenue        float64                `json:"revenue"` // CA HT du service
	Solid          float64                `json:"solid"`
	Liquid         float64                `json:"liquid"`
	Majoration     float64                `json:"majoration"`
	GraphURL       string                 `json:"graph_url"`
	TopLiquids     []RankedDrink          `json:"top_liquids"`
	ProductsByName map[string][]SaleEvent `json:"products_by_name"`
	Timeline       map[string][]float64   `json:"timeline"`
	Concert        string                 `json:"concert"`
	ConcertInfos   ConcertInfos           `json:"concert_infos"`
	CreatedAt      time.Time              `json:"created_at"`
}

func (s *Service) IDStr() string {
	return fmt.Sprintf("<Service: %d - %s>", s.ID, s.Date.Format(time.DateOnly))
}
