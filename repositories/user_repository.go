package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"sanjeevika-shop/config"
	"sanjeevika-shop/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User, hashedPassword string) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = "customer"
	}

	addresses, _ := json.Marshal(user.Addresses)
	now := time.Now()

	query := `
		INSERT INTO users (id, name, email, password, mobile, state, country, role, addresses, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	return config.DB.QueryRow(
		context.Background(),
		query,
		user.ID,
		user.Name,
		user.Email,
		hashedPassword,
		user.Mobile,
		user.State,
		user.Country,
		user.Role,
		addresses,
		now,
		now,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, string, error) {
	query := `
		SELECT id, name, email, password, mobile, state, country, role, addresses, created_at, updated_at
		FROM users WHERE email = $1
	`
	return r.scanUser(config.DB.QueryRow(context.Background(), query, email))
}

func (r *UserRepository) FindByID(id string) (*models.User, string, error) {
	query := `
		SELECT id, name, email, password, mobile, state, country, role, addresses, created_at, updated_at
		FROM users WHERE id = $1
	`
	return r.scanUser(config.DB.QueryRow(context.Background(), query, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*models.User, string, error) {
	user := &models.User{}
	var password string
	var addresses []byte

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&password,
		&user.Mobile,
		&user.State,
		&user.Country,
		&user.Role,
		&addresses,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, "", err
	}

	if len(addresses) > 0 {
		json.Unmarshal(addresses, &user.Addresses)
	}

	return user, password, nil
}

func (r *UserRepository) FindAll(page, limit int) ([]models.User, int, error) {
	offset := (page - 1) * limit

	var totalCount int
	if err := config.DB.QueryRow(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, email, password, mobile, state, country, role, addresses, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := config.DB.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, _, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}

	return users, totalCount, nil
}

func (r *UserRepository) Update(user *models.User) error {
	addresses, _ := json.Marshal(user.Addresses)

	query := `
		UPDATE users
		SET name = $1, email = $2, mobile = $3, state = $4, country = $5, addresses = $6, updated_at = $7
		WHERE id = $8
	`
	_, err := config.DB.Exec(
		context.Background(),
		query,
		user.Name,
		user.Email,
		user.Mobile,
		user.State,
		user.Country,
		addresses,
		time.Now(),
		user.ID,
	)
	return err
}

func (r *UserRepository) UpdatePassword(userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`
	_, err := config.DB.Exec(context.Background(), query, hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) Delete(id string) error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	return err
}
