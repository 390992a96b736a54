package ingesting

import "errors"

// Erreurs spécifiques à l'ingestion d'un service
var (
	// ErrNoSales : la caisse n'a aucun document de service pour la date.
	ErrNoSales = errors.New("aucune vente pour cette date")

	// ErrProductNotFound : une ligne de vente référence un produit absent du
	// menu local. Le catalogue doit être resynchronisé avant de relancer.
	ErrProductNotFound = errors.New("produit introuvable dans le menu, resynchroniser le catalogue")

	// ErrDuplicateProduct : plusieurs produits locaux partagent la même clé
	// naturelle, violation d'intégrité du menu.
	ErrDuplicateProduct = errors.New("plus d'un produit trouvé dans le menu pour la même clé")

	// ErrLegacyTypeMatch : la correspondance de majoration par type de
	// produit s'est déclenchée. Voir matchRuleByProductType.
	ErrLegacyTypeMatch = errors.New("correspondance de majoration par type de produit atteinte")

	// ErrShiftAlreadyIngested : un agrégat est déjà persisté pour cette date,
	// l'ingestion ne réécrit jamais un service existant.
	ErrShiftAlreadyIngested = errors.New("un service est déjà enregistré pour cette date")
)
