package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cultplace/cultplace-api/infrastructure/database/postgres"
	"github.com/cultplace/cultplace-api/internal/domain"
)

const (
	servicesTable   = "services s"
	servicesColumns = "s.id, s.company, s.date, s.revenue, s.solid, s.liquid, s.majoration, s.graph_url, s.top_liquids, s.products_by_name, s.timeline, s.concert, s.concert_infos, s.created_at"

	// Code pq d'une violation de contrainte d'unicité
	uniqueViolationCode = "23505"
)

// ErrServiceAlreadyExists : la contrainte UNIQUE (company, date) a rejeté
// l'insertion, un service existe déjà pour cet établissement et cette date.
var ErrServiceAlreadyExists = errors.New("un service existe déjà pour cette date")

type ServiceRepository interface {
	Insert(service *domain.Service) error
	GetByID(id int64) (*domain.Service, error)
	GetByDate(company string, date time.Time) (*domain.Service, error)
	List(page, perPage int, startDate, endDate *time.Time) ([]*domain.Service, error)
	Delete(id int64) error
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

// Insert persiste l'agrégat d'un service. La contrainte UNIQUE (company, date)
// du schéma garantit au plus une ligne par établissement et par date.
func (r *serviceRepository) Insert(service *domain.Service) error {
	topLiquidsJSON, err := json.Marshal(service.TopLiquids)
	if err != nil {
		return fmt.Errorf("erreur lors de la sérialisation de top_liquids : %w", err)
	}

	productsByNameJSON, err := json.Marshal(service.ProductsByName)
	if err != nil {
		return fmt.Errorf("erreur lors de la sérialisation de products_by_name : %w", err)
	}

	timelineJSON, err := json.Marshal(service.Timeline)
	if err != nil {
		return fmt.Errorf("erreur lors de la sérialisation de timeline : %w", err)
	}

	concertInfosJSON, err := json.Marshal(service.ConcertInfos)
	if err != nil {
		return fmt.Errorf("erreur lors de la sérialisation de concert_infos : %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("services").
		Columns(
			"company", "date", "revenue", "solid", "liquid", "majoration",
			"graph_url", "top_liquids", "products_by_name", "timeline",
			"concert", "concert_infos",
		).
		Values(
			service.Company,
			service.Date.Format(time.DateOnly),
			service.Revenue,
			service.Solid,
			service.Liquid,
			service.Majoration,
			service.GraphURL,
			topLiquidsJSON,
			productsByNameJSON,
			timelineJSON,
			service.Concert,
			concertInfosJSON,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&service.ID, &service.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == uniqueViolationCode {
				return fmt.Errorf("%w : %s / %s", ErrServiceAlreadyExists, service.Company, service.Date.Format(time.DateOnly))
			}
			return fmt.Errorf("erreur en base de données : %w (code : %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erreur lors de l'insertion du service : %w", err)
	}

	return nil
}

func (r *serviceRepository) GetByID(id int64) (*domain.Service, error) {
	query, args, err := squirrel.
		Select(servicesColumns).
		From(servicesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	services, err := r.queryServices(query, args...)
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return nil, nil
	}

	return services[0], nil
}

func (r *serviceRepository) GetByDate(company string, date time.Time) (*domain.Service, error) {
	query, args, err := squirrel.
		Select(servicesColumns).
		From(servicesTable).
		Where(squirrel.Eq{"s.company": company, "s.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	services, err := r.queryServices(query, args...)
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return nil, nil
	}

	return services[0], nil
}

// List retourne les services du plus récent au plus ancien, avec un filtre de
// période optionnel.
func (r *serviceRepository) List(page, perPage int, startDate, endDate *time.Time) ([]*domain.Service, error) {
	if page < 1 {
		page = 1
	}

	builder := squirrel.
		Select(servicesColumns).
		From(servicesTable).
		OrderBy("s.id DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		PlaceholderFormat(squirrel.Dollar)

	if startDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.date": startDate.Format(time.DateOnly)})
	}
	if endDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"s.date": endDate.Format(time.DateOnly)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	return r.queryServices(query, args...)
}

func (r *serviceRepository) Delete(id int64) error {
	query, args, err := squirrel.
		Delete("services").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erreur lors de la suppression du service : %w", err)
	}

	return nil
}

func (r *serviceRepository) queryServices(query string, args ...interface{}) ([]*domain.Service, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de l'exécution de la requête : %w", err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := r.scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("erreur lors du scan d'un service : %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur pendant l'itération des lignes : %w", err)
	}

	return services, nil
}

func (r *serviceRepository) scanService(rows *sql.Rows) (*domain.Service, error) {
	service := &domain.Service{}
	var topLiquidsJSON, productsByNameJSON, timelineJSON, concertInfosJSON []byte

	err := rows.Scan(
		&service.ID,
		&service.Company,
		&service.Date,
		&service.Revenue,
		&service.Solid,
		&service.Liquid,
		&service.Majoration,
		&service.GraphURL,
		&topLiquidsJSON,
		&productsByNameJSON,
		&timelineJSON,
		&service.Concert,
		&concertInfosJSON,
		&service.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if topLiquidsJSON != nil {
		if err := json.Unmarshal(topLiquidsJSON, &service.TopLiquids); err != nil {
			return nil, fmt.Errorf("erreur lors de la désérialisation de top_liquids : %w", err)
		}
	}

	if productsByNameJSON != nil {
		if err := json.Unmarshal(productsByNameJSON, &service.ProductsByName); err != nil {
			return nil, fmt.Errorf("erreur lors de la désérialisation de products_by_name : %w", err)
		}
	}

	if timelineJSON != nil {
		if err := json.Unmarshal(timelineJSON, &service.Timeline); err != nil {
			return nil, fmt.Errorf("erreur lors de la désérialisation de timeline : %w", err)
		}
	}

	if concertInfosJSON != nil {
		if err := json.Unmarshal(concertInfosJSON, &service.ConcertInfos); err != nil {
			return nil, fmt.Errorf("erreur lors de la désérialisation de concert_infos : %w", err)
		}
	}

	return service, nil
}
