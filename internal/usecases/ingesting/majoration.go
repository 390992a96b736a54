package ingesting

// MajorationRule associe un montant de majoration concert à l'ensemble des
// produits auxquels il s'applique.
type MajorationRule struct {
	Amount   float64
	Products []string
}

// MajorationRules est la grille tarifaire des majorations appliquées aux
// boissons les soirs de concert. L'ordre des règles est celui de la grille
// historique et fait foi : la première règle dont la liste contient le
// produit gagne.
var MajorationRules = []MajorationRule{
	{
		Amount: 0,
		Products: []string{
			"Bière Bouteille",
			"SHOT ",
			"SHOT supp",
			"APPIE BRUT",
			"APPIE POIRE",
			"APPIE ROSE",
			"CAIPI",
			"TI PUNCH",
			"CORONA",
			"GIN FIZZ",
			"CUBA LIBRE",
			"COCKTAILS  dimanche",
		},
	},
	{
		Amount: 0.5,
		Products: []string{
			"V Chardonnay ",
			"Demi Blonde",
			"Demi Péroni",
			"Demi grolsch",
			"Demi IPA",
		},
	},
	{
		Amount: 1,
		Products: []string{
			"SOFT verse",
			"Alcool PREM + Soft",
			"Alcool+Soft",
			"Virgin cocktails",
			"DEMI Autre",
			"Blonde pinte",
			"Pinte grolsch",
			"Pinte peroni",
			"Pinte IPA",
			"DEMI Blanche",
			"Demi St stef",
			"BUNDABERG",
			"MOSCOW MULE",
			"DARK & STORMY",
			"REDBULL",
			"PINTE Autre",
		},
	},
	{
		Amount: 1.5,
		Products: []string{
			"V Syrah",
			"V Rose",
			"Lemonaid",
			"Charitea ",
		},
	},
	{
		Amount: 2,
		Products: []string{
			"BTL CHARDONAY ",
			"PINTE Blanche",
			"Pinte st stef",
			"MOJITO",
			"Weizen Pinte",
		},
	},
	{
		Amount: 3,
		Products: []string{
			"SPRITZ ST GERMAIN",
			"COCKTAILS  classique",
		},
	},
	{
		Amount: 4,
		Products: []string{
			"SPRITZ",
			"SPRITZ FIERO",
		},
	},
	{
		Amount: 7,
		Products: []string{
			"BTL SYRAH ",
			"BTL Rose",
		},
	},
}

// matchRuleByProductName retourne le montant de la première règle dont la
// liste de produits contient ce nom.
func matchRuleByProductName(rules []MajorationRule, productName string) (float64, bool) {
	for _, rule := range rules {
		for _, ruleProduct := range rule.Products {
			if ruleProduct == productName {
				return rule.Amount, true
			}
		}
	}

	return 0, false
}

// matchRuleByProductType cherche une règle par type de produit plutôt que par
// nom. Branche héritée de la première version de la grille, jamais observée
// en production et vraisemblablement morte : elle est conservée isolée ici en
// attendant l'arbitrage métier, et l'ingestion échoue explicitement si elle
// se déclenche.
func matchRuleByProductType(rules []MajorationRule, productType string) (float64, bool) {
	for _, rule := range rules {
		for _, ruleProduct := range rule.Products {
			if ruleProduct == productType {
				return rule.Amount, true
			}
		}
	}

	return 0, false
}
