package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"sanjeevika-shop/config"
	"sanjeevika-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `
	id, title, description, price, image, category, COALESCE(sku, ''),
	COALESCE(rating, 0), COALESCE(reviews, 0), key_benefits, tags, variants,
	is_active, created_at, updated_at
`

func (r *ProductRepository) scanProduct(row rowScanner) (*models.Product, error) {
	p := &models.Product{}
	var variants []byte

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.Category,
		&p.SKU,
		&p.Rating,
		&p.Reviews,
		&p.KeyBenefits,
		&p.Tags,
		&variants,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(variants) > 0 {
		json.Unmarshal(variants, &p.Variants)
	}

	return p, nil
}

func (r *ProductRepository) GetAll(page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE is_active = true ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}

	return products, total, nil
}

func (r *ProductRepository) GetByCategory(category string) ([]models.Product, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE is_active = true AND category = $1 ORDER BY created_at DESC`,
		category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, nil
}

func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	return r.scanProduct(config.DB.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

func (r *ProductRepository) Create(p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	variants, _ := json.Marshal(p.Variants)
	now := time.Now()

	query := `
		INSERT INTO products (id, title, description, price, image, category, sku,
			rating, reviews, key_benefits, tags, variants, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`
	return config.DB.QueryRow(
		context.Background(),
		query,
		p.ID, p.Title, p.Description, p.Price, p.Image, p.Category, p.SKU,
		p.Rating, p.Reviews, p.KeyBenefits, p.Tags, variants, p.IsActive, now, now,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(p *models.Product) error {
	variants, _ := json.Marshal(p.Variants)

	query := `
		UPDATE products
		SET title = $1, description = $2, price = $3, image = $4, category = $5,
			sku = $6, key_benefits = $7, tags = $8, variants = $9, is_active = $10, updated_at = $11
		WHERE id = $12
	`
	_, err := config.DB.Exec(
		context.Background(),
		query,
		p.Title, p.Description, p.Price, p.Image, p.Category,
		p.SKU, p.KeyBenefits, p.Tags, variants, p.IsActive, time.Now(), p.ID,
	)
	return err
}

func (r *ProductRepository) Delete(id string) error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	return err
}
