package reporting

import (
	"errors"
	"fmt"
	"time"

	"github.com/cultplace/cultplace-api/infrastructure/repository"
	"github.com/cultplace/cultplace-api/internal/domain"
	"github.com/cultplace/cultplace-api/pkg/utils"
)

// PerPage est le nombre de services par page de listing.
const PerPage = 10

var ErrServiceNotFound = errors.New("service introuvable")

// ServiceReporter expose la lecture des services agrégés et les requêtes de
// chiffre d'affaires sur leurs relevés détaillés.
type ServiceReporter interface {
	ListServices(page int, startDate, endDate *time.Time) ([]*domain.Service, error)
	GetService(id int64) (*domain.Service, error)
	DeleteService(id int64) error

	// RevenueBetween somme les ventes du service strictement comprises
	// entre les deux horodatages, d'après la chronologie persistée.
	RevenueBetween(serviceID int64, start, end time.Time) (float64, error)

	// RevenueByProduct somme les ventes du produit donné sur tout le
	// service, d'après le relevé par produit persisté.
	RevenueByProduct(serviceID int64, productName string) (float64, error)
}

type Service struct {
	serviceRepo repository.ServiceRepository
}

func NewService(serviceRepo repository.ServiceRepository) ServiceReporter {
	return &Service{
		serviceRepo: serviceRepo,
	}
}

func (s *Service) ListServices(page int, startDate, endDate *time.Time) ([]*domain.Service, error) {
	return s.serviceRepo.List(page, PerPage, startDate, endDate)
}

func (s *Service) GetService(id int64) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if service == nil {
		return nil, ErrServiceNotFound
	}

	return service, nil
}

func (s *Service) DeleteService(id int64) error {
	service, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}

	if service == nil {
		return ErrServiceNotFound
	}

	return s.serviceRepo.Delete(id)
}

func (s *Service) RevenueBetween(serviceID int64, start, end time.Time) (float64, error) {
	service, err := s.GetService(serviceID)
	if err != nil {
		return 0, err
	}

	var total float64
	for timestamp, amounts := range service.Timeline {
		saleTime, err := time.Parse(time.DateTime, timestamp)
		if err != nil {
			return 0, fmt.Errorf("horodatage illisible dans la chronologie du service %d : %w", serviceID, err)
		}

		if saleTime.After(start) && saleTime.Before(end) {
			for _, amount := range amounts {
				total += amount
			}
		}
	}

	return utils.RoundWithTwoDecimalPlace(total), nil
}

func (s *Service) RevenueByProduct(serviceID int64, productName string) (float64, error) {
	service, err := s.GetService(serviceID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, sale := range service.ProductsByName[productName] {
		total += sale.Amount
	}

	return utils.RoundWithTwoDecimalPlace(total), nil
}
