package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cultplace/cultplace-api/infrastructure/database/postgres"
	"github.com/cultplace/cultplace-api/internal/domain"
)

const (
	productsTable   = "products p"
	productsColumns = "p.id, p.uniq_id_product, p.product_name, p.product_price, p.id_product_type, p.product_type, p.id_category, p.category_name, p.category1, p.category2, p.tax_name, p.place_send_name, p.visible, p.removed"
)

type ProductRepository interface {
	FindByUniqIDs(uniqIDs []string) ([]*domain.Product, error)
	FindByUniqID(uniqID string) ([]*domain.Product, error)
	BulkInsert(products []*domain.Product) error
	BulkUpdate(products []*domain.Product) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) FindByUniqIDs(uniqIDs []string) ([]*domain.Product, error) {
	if len(uniqIDs) == 0 {
		return []*domain.Product{}, nil
	}

	query, args, err := squirrel.
		Select(productsColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.uniq_id_product": uniqIDs}).
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	return r.queryProducts(query, args...)
}

// FindByUniqID retourne tous les produits portant cette clé naturelle. La
// contrainte d'unicité du schéma garantit zéro ou un résultat ; un doublon
// signale une violation d'intégrité que l'appelant doit traiter.
func (r *productRepository) FindByUniqID(uniqID string) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productsColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.uniq_id_product": uniqID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	return r.queryProducts(query, args...)
}

func (r *productRepository) BulkInsert(products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("products").
		Columns(
			"uniq_id_product", "product_name", "product_price",
			"id_product_type", "product_type", "id_category", "category_name",
			"category1", "category2", "tax_name", "place_send_name",
			"visible", "removed",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, product := range products {
		builder = builder.Values(
			product.UniqIDProduct,
			product.ProductName,
			product.ProductPrice,
			product.IDProductType,
			product.ProductType,
			product.IDCategory,
			product.CategoryName,
			product.Category1,
			product.Category2,
			product.TaxName,
			product.PlaceSendName,
			product.Visible,
			product.Removed,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erreur lors de la construction de la requête : %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erreur en base de données : %w (code : %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erreur lors de l'exécution de la requête : %w", err)
	}

	return nil
}

// BulkUpdate persiste les produits modifiés en une seule transaction : tous
// les champs divergents d'un produit sont écrits d'un bloc, jamais champ par
// champ.
func (r *productRepository) BulkUpdate(products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, product := range products {
			query, args, err := squirrel.
				Update("products").
				Set("product_name", product.ProductName).
				Set("product_price", product.ProductPrice).
				Set("id_product_type", product.IDProductType).
				Set("product_type", product.ProductType).
				Set("id_category", product.IDCategory).
				Set("category_name", product.CategoryName).
				Set("category1", product.Category1).
				Set("category2", product.Category2).
				Set("tax_name", product.TaxName).
				Set("place_send_name", product.PlaceSendName).
				Set("visible", product.Visible).
				Set("removed", product.Removed).
				Where(squirrel.Eq{"uniq_id_product": product.UniqIDProduct}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erreur lors de la construction de la requête : %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erreur lors de la mise à jour du produit %s : %w", product.UniqIDProduct, err)
			}
		}

		return nil
	})
}

func (r *productRepository) queryProducts(query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de l'exécution de la requête : %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erreur lors du scan d'un produit : %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur pendant l'itération des lignes : %w", err)
	}

	return products, nil
}

func (r *productRepository) scanProduct(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}

	err := rows.Scan(
		&product.ID,
		&product.UniqIDProduct,
		&product.ProductName,
		&product.ProductPrice,
		&product.IDProductType,
		&product.ProductType,
		&product.IDCategory,
		&product.CategoryName,
		&product.Category1,
		&product.Category2,
		&product.TaxName,
		&product.PlaceSendName,
		&product.Visible,
		&product.Removed,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
