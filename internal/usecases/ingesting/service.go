package ingesting

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cultplace/cultplace-api/infrastructure/integrator/imagecharts"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/laddition"
	ladditiondomain "github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/domain"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog"
	"github.com/cultplace/cultplace-api/infrastructure/repository"
	"github.com/cultplace/cultplace-api/internal/config"
	"github.com/cultplace/cultplace-api/internal/domain"
	"github.com/cultplace/cultplace-api/pkg/utils"
)

const (
	// concertCategoryLabel tague en caisse les ventes majorées des soirs de concert
	concertCategoryLabel = "CONCERT"

	pieChartTitle = "LIQUIDES HT (TOP 5)"
	topDrinksSize = 5
)

// ShiftIngester agrège les ventes d'un service et persiste le résultat.
type ShiftIngester interface {
	// IngestShift agrège le service ouvert à la date donnée, de l'ouverture
	// l'après-midi à la fermeture le lendemain matin. Retourne ErrNoSales si
	// la caisse n'a rien enregistré. Aucun agrégat partiel n'est jamais
	// persisté : la ligne est écrite entière, ou pas du tout.
	IngestShift(date time.Time) (*domain.Service, error)
}

type Service struct {
	cfg         *config.Config
	laddition   laddition.LadditionIntegrator
	sowprog     sowprog.SowprogIntegrator
	charts      imagecharts.Renderer
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	rules       []MajorationRule
}

func NewService(
	cfg *config.Config,
	ladditionService laddition.LadditionIntegrator,
	sowprogService sowprog.SowprogIntegrator,
	charts imagecharts.Renderer,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
) ShiftIngester {
	return &Service{
		cfg:         cfg,
		laddition:   ladditionService,
		sowprog:     sowprogService,
		charts:      charts,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		rules:       MajorationRules,
	}
}

// revenueAccumulator ventile le chiffre d'affaires hors taxe d'un service.
type revenueAccumulator struct {
	solid          float64
	liquid         float64
	liquidQuantity int
	unclassified   float64
}

// majorationAccumulator cumule les majorations concert du service.
type majorationAccumulator struct {
	amount   float64
	quantity int
}

// shiftTallies porte les listes de pointage converties en décomptes lors de
// la passe finale.
type shiftTallies struct {
	drinksSold        []string
	withMajoration    []string
	withoutMajoration []string
	lackingMajoration []string
}

func (s *Service) IngestShift(date time.Time) (*domain.Service, error) {
	runID, _ := utils.GenerateID()

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"date":   date.Format(time.DateOnly),
	})

	// La résolution du concert n'est jamais bloquante : en cas d'échec la
	// fiche par défaut est conservée
	concertName, concertInfos, err := s.sowprog.ResolveConcert(date)
	if err != nil {
		logger.WithError(err).Warn("Résolution du concert en échec, fiche par défaut conservée")
	}

	openingDate := fmt.Sprintf("%s %s", date.Format(time.DateOnly), s.cfg.Venue.ShiftOpeningTime)
	closingDate := fmt.Sprintf("%s %s", date.AddDate(0, 0, 1).Format(time.DateOnly), s.cfg.Venue.ShiftClosingTime)

	shift, err := s.laddition.FindShiftDocument(openingDate, closingDate)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche du service en caisse : %w", err)
	}

	if shift == nil {
		logger.Info("Aucun document de service en caisse pour cette date")
		return nil, ErrNoSales
	}

	lines, err := s.laddition.FetchAllSalesLines(shift.ID.String())
	if err != nil {
		return nil, fmt.Errorf("erreur lors du rapatriement des lignes de vente : %w", err)
	}

	revenue := &revenueAccumulator{}
	majoration := &majorationAccumulator{}
	tallies := &shiftTallies{}
	timeline := make(map[string][]float64)
	productsByName := make(map[string][]domain.SaleEvent)

	for _, line := range lines {
		product, err := s.resolveProduct(line)
		if err != nil {
			return nil, err
		}

		// Toutes les ventes alimentent la chronologie et le relevé par
		// produit, quelle que soit la catégorie
		timeline[line.TimestampLocale] = append(timeline[line.TimestampLocale], line.AmountTotalEVAT)
		productsByName[line.ProductName] = append(productsByName[line.ProductName], domain.SaleEvent{
			Timestamp: line.TimestampLocale,
			Amount:    line.AmountTotalEVAT,
		})

		switch product.Category1 {
		case domain.CategorySolid:
			revenue.solid += line.AmountTotalEVAT

		case domain.CategoryLiquid:
			tallies.drinksSold = append(tallies.drinksSold, line.ProductName)
			revenue.liquid += line.AmountTotalEVAT
			revenue.liquidQuantity++

			if line.CategoryName == concertCategoryLabel {
				if err := s.applyMajoration(line, majoration, tallies); err != nil {
					return nil, err
				}
			} else {
				tallies.withoutMajoration = append(tallies.withoutMajoration, line.ProductName)
			}

		default:
			revenue.unclassified += line.AmountTotalEVAT
		}
	}

	if revenue.unclassified > 0 {
		logger.WithFields(logrus.Fields{
			"unclassified_revenue": revenue.unclassified,
		}).Warn("Chiffre d'affaires hors catégories solid/liquid, non ventilé dans l'agrégat")
	}

	countedDrinks := utils.CountByOccurrence(tallies.drinksSold)
	topLiquids := topDrinks(countedDrinks, topDrinksSize)

	logger.WithFields(logrus.Fields{
		"products_with_majoration":    utils.CountByOccurrence(tallies.withMajoration),
		"products_without_majoration": utils.CountByOccurrence(tallies.withoutMajoration),
		"products_lacking_majoration": utils.CountByOccurrence(tallies.lackingMajoration),
		"majoration_quantity":         majoration.quantity,
	}).Debug("Pointage des majorations du service")

	liquidRounded := utils.RoundWithTwoDecimalPlace(revenue.liquid)

	graphURL, err := s.charts.PieChartURL(pieChartSpec(topLiquids, liquidRounded))
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction du graphique : %w", err)
	}

	service := &domain.Service{
		Company:        s.cfg.Venue.Company,
		Date:           date,
		Revenue:        utils.RoundWithTwoDecimalPlace(shift.AmountTotalEVAT),
		Solid:          utils.RoundWithTwoDecimalPlace(revenue.solid),
		Liquid:         liquidRounded,
		Majoration:     utils.RoundWithTwoDecimalPlace(majoration.amount),
		GraphURL:       graphURL,
		TopLiquids:     topLiquids,
		ProductsByName: productsByName,
		Timeline:       timeline,
		Concert:        concertName,
		ConcertInfos:   concertInfos,
	}

	if err := s.serviceRepo.Insert(service); err != nil {
		if errors.Is(err, repository.ErrServiceAlreadyExists) {
			return nil, fmt.Errorf("%w (%s)", ErrShiftAlreadyIngested, date.Format(time.DateOnly))
		}
		return nil, fmt.Errorf("erreur lors de la persistance du service : %w", err)
	}

	logger.WithFields(logrus.Fields{
		"service_id":      service.ID,
		"revenue":         service.Revenue,
		"solid":           service.Solid,
		"liquid":          service.Liquid,
		"majoration":      service.Majoration,
		"liquid_quantity": revenue.liquidQuantity,
		"concert":         service.Concert,
	}).Infof("Ajout d'un service : %s", service.IDStr())

	return service, nil
}

// resolveProduct retrouve le produit local d'une ligne de vente par sa clé
// naturelle. Zéro ou plusieurs correspondances interrompent toute
// l'ingestion : l'agrégat serait faux.
func (s *Service) resolveProduct(line ladditiondomain.SalesDocumentLine) (*domain.Product, error) {
	uniqID := line.IDProduct.String()

	products, err := s.productRepo.FindByUniqID(uniqID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche du produit %s : %w", uniqID, err)
	}

	switch {
	case len(products) == 0:
		return nil, fmt.Errorf("%w (produit %s, %q)", ErrProductNotFound, uniqID, line.ProductName)
	case len(products) > 1:
		return nil, fmt.Errorf("%w (produit %s, %q)", ErrDuplicateProduct, uniqID, line.ProductName)
	}

	return products[0], nil
}

// applyMajoration attribue la majoration concert d'une vente d'après la
// grille : d'abord par nom de produit, sinon rien — la correspondance par
// type de produit est une branche héritée qui fait échouer l'ingestion si
// elle se déclenche, plutôt que d'appliquer un montant douteux en silence.
func (s *Service) applyMajoration(
	line ladditiondomain.SalesDocumentLine,
	majoration *majorationAccumulator,
	tallies *shiftTallies,
) error {
	if amount, ok := matchRuleByProductName(s.rules, line.ProductName); ok {
		majoration.amount += amount
		majoration.quantity++
		tallies.withMajoration = append(tallies.withMajoration, line.ProductName)
		return nil
	}

	if _, ok := matchRuleByProductType(s.rules, line.ProductType); ok {
		return fmt.Errorf("%w (produit %q, type %q)", ErrLegacyTypeMatch, line.ProductName, line.ProductType)
	}

	// Vente taguée concert sans règle applicable : à instruire côté métier
	tallies.lackingMajoration = append(tallies.lackingMajoration, line.ProductName)
	return nil
}

// topDrinks retient les n boissons les plus vendues, décompte déjà trié par
// occurrences décroissantes.
func topDrinks(counted []utils.ElementCount, n int) []domain.RankedDrink {
	if len(counted) > n {
		counted = counted[:n]
	}

	top := make([]domain.RankedDrink, 0, len(counted))
	for _, element := range counted {
		top = append(top, domain.RankedDrink{
			Name:     element.Element,
			Quantity: element.Count,
		})
	}

	return top
}

func pieChartSpec(topLiquids []domain.RankedDrink, liquidRevenue float64) imagecharts.PieChartSpec {
	values := make([]int, 0, len(topLiquids))
	labels := make([]string, 0, len(topLiquids))
	for _, drink := range topLiquids {
		values = append(values, drink.Quantity)
		labels = append(labels, drink.Name)
	}

	return imagecharts.PieChartSpec{
		Values:      values,
		Labels:      labels,
		InsideLabel: fmt.Sprintf("%.2f €", liquidRevenue),
		Title:       pieChartTitle,
	}
}
