package syncing

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/cultplace/cultplace-api/infrastructure/integrator/laddition"
	ladditiondomain "github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/domain"
	"github.com/cultplace/cultplace-api/infrastructure/repository"
	"github.com/cultplace/cultplace-api/internal/domain"
)

// ProductSyncer réconcilie le catalogue distant L'Addition avec le menu local.
type ProductSyncer interface {
	// SyncProducts rapatrie le catalogue distant puis crée les produits
	// inconnus et met à jour ceux dont au moins un champ diverge.
	SyncProducts() (created []*domain.Product, updated []*domain.Product, err error)
}

type Service struct {
	laddition   laddition.LadditionIntegrator
	productRepo repository.ProductRepository
}

func NewService(
	ladditionService laddition.LadditionIntegrator,
	productRepo repository.ProductRepository,
) ProductSyncer {
	return &Service{
		laddition:   ladditionService,
		productRepo: productRepo,
	}
}

func (s *Service) SyncProducts() ([]*domain.Product, []*domain.Product, error) {
	records, err := s.laddition.FetchAllProducts()
	if err != nil {
		return nil, nil, fmt.Errorf("erreur lors du rapatriement du catalogue distant : %w", err)
	}

	remoteProducts := extractProducts(records)

	uniqIDs := make([]string, 0, len(remoteProducts))
	for _, product := range remoteProducts {
		uniqIDs = append(uniqIDs, product.UniqIDProduct)
	}

	existingProducts, err := s.productRepo.FindByUniqIDs(uniqIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("erreur lors de la lecture du catalogue local : %w", err)
	}

	updatedProducts, productsToCreate := reconcileProducts(existingProducts, remoteProducts)

	if err := s.productRepo.BulkUpdate(updatedProducts); err != nil {
		return nil, nil, fmt.Errorf("erreur lors de la mise à jour des produits : %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"updated_products": len(updatedProducts),
	}).Infof("Mise à jour de %d produits existants", len(updatedProducts))

	if err := s.productRepo.BulkInsert(productsToCreate); err != nil {
		return nil, nil, fmt.Errorf("erreur lors de la création des produits : %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"created_products": len(productsToCreate),
	}).Infof("Création de %d nouveaux produits", len(productsToCreate))

	return productsToCreate, updatedProducts, nil
}

// reconcileProducts confronte les produits locaux aux enregistrements
// distants. Chaque produit local dont un champ diverge reçoit les valeurs
// distantes et rejoint le lot de mise à jour ; son homologue distant est
// consommé. Les enregistrements distants restants, sans homologue local,
// forment le lot de création, dans leur ordre d'arrivée.
func reconcileProducts(
	existingProducts []*domain.Product,
	remoteProducts []*domain.Product,
) (updated []*domain.Product, toCreate []*domain.Product) {
	remoteByUniqID := make(map[string]*domain.Product, len(remoteProducts))
	for _, product := range remoteProducts {
		remoteByUniqID[product.UniqIDProduct] = product
	}

	consumed := make(map[string]bool, len(existingProducts))
	updated = make([]*domain.Product, 0)

	for _, existing := range existingProducts {
		remote, ok := remoteByUniqID[existing.UniqIDProduct]
		if !ok {
			// Les produits locaux ont été sélectionnés par l'ensemble des
			// clés distantes, l'homologue existe donc toujours
			continue
		}

		if applyProductDiff(existing, remote) {
			updated = append(updated, existing)
		}

		consumed[existing.UniqIDProduct] = true
	}

	toCreate = make([]*domain.Product, 0)
	for _, remote := range remoteProducts {
		if !consumed[remote.UniqIDProduct] {
			toCreate = append(toCreate, remote)
		}
	}

	return updated, toCreate
}

// applyProductDiff compare chaque colonne mutable du produit, clé primaire et
// clé naturelle exclues, et recopie les valeurs divergentes sur le produit
// local. Retourne vrai si au moins un champ a changé. Tous les champs
// divergents sont appliqués d'un bloc, jamais partiellement.
func applyProductDiff(existing *domain.Product, remote *domain.Product) bool {
	changed := false

	if existing.ProductName != remote.ProductName {
		existing.ProductName = remote.ProductName
		changed = true
	}
	if existing.ProductPrice != remote.ProductPrice {
		existing.ProductPrice = remote.ProductPrice
		changed = true
	}
	if existing.IDProductType != remote.IDProductType {
		existing.IDProductType = remote.IDProductType
		changed = true
	}
	if existing.ProductType != remote.ProductType {
		existing.ProductType = remote.ProductType
		changed = true
	}
	if existing.IDCategory != remote.IDCategory {
		existing.IDCategory = remote.IDCategory
		changed = true
	}
	if existing.CategoryName != remote.CategoryName {
		existing.CategoryName = remote.CategoryName
		changed = true
	}
	if existing.Category1 != remote.Category1 {
		existing.Category1 = remote.Category1
		changed = true
	}
	if existing.Category2 != remote.Category2 {
		existing.Category2 = remote.Category2
		changed = true
	}
	if existing.TaxName != remote.TaxName {
		existing.TaxName = remote.TaxName
		changed = true
	}
	if existing.PlaceSendName != remote.PlaceSendName {
		existing.PlaceSendName = remote.PlaceSendName
		changed = true
	}
	if existing.Visible != remote.Visible {
		existing.Visible = remote.Visible
		changed = true
	}
	if existing.Removed != remote.Removed {
		existing.Removed = remote.Removed
		changed = true
	}

	return changed
}

// extractProducts convertit les enregistrements distants en produits locaux.
// Les enregistrements sans clé naturelle sont écartés, de même que ceux dont
// un champ numérique est illisible : un zéro silencieux fausserait le menu.
func extractProducts(records []ladditiondomain.ProductRecord) []*domain.Product {
	products := make([]*domain.Product, 0, len(records))

	for _, record := range records {
		uniqID := record.IDProductGlobal.String()
		if uniqID == "" {
			continue
		}

		var price float64
		if record.ProductPrice != "" {
			parsed, err := record.ProductPrice.Float64()
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"uniq_id_product": uniqID,
					"product_name":    record.ProductName,
					"product_price":   record.ProductPrice.String(),
				}).Error("Prix distant illisible, enregistrement écarté")
				continue
			}
			price = parsed
		}

		var idProductType int
		if record.IDProductType != "" {
			parsed, err := strconv.Atoi(record.IDProductType.String())
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"uniq_id_product": uniqID,
					"product_name":    record.ProductName,
					"id_product_type": record.IDProductType.String(),
				}).Error("Type de produit distant illisible, enregistrement écarté")
				continue
			}
			idProductType = parsed
		}

		products = append(products, &domain.Product{
			UniqIDProduct: uniqID,
			ProductName:   record.ProductName,
			ProductPrice:  price,
			IDProductType: idProductType,
			ProductType:   record.ProductType,
			IDCategory:    record.IDCategory,
			CategoryName:  record.CategoryName,
			Category1:     record.Category1,
			Category2:     record.Category2,
			TaxName:       record.TaxName,
			PlaceSendName: record.PlaceSendName,
			Visible:       record.Visible != 0,
			Removed:       record.Removed != 0,
		})
	}

	return products
}
