package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sanjeevika-shop/config"
	"sanjeevika-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(order *models.Order) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.OrderNumber == "" {
		order.OrderNumber = fmt.Sprintf("ORD-%s", time.Now().Format("20060102-150405"))
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	address, _ := json.Marshal(order.Address)
	now := time.Now()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (id, order_number, user_id, subtotal, tax, discount, shipping_cost,
			total_amount, status, payment_method, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`,
		order.ID, order.OrderNumber, order.UserID, order.Subtotal, order.Tax,
		order.Discount, order.ShippingCost, order.TotalAmount, order.Status,
		order.PaymentMethod, address, order.Notes, now, now,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.OrderID = order.ID

		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, title, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, item.ID, item.OrderID, item.ProductID, item.Title, item.Price, item.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}
	var address []byte

	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.Subtotal,
		&order.Tax,
		&order.Discount,
		&order.ShippingCost,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentMethod,
		&address,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(address) > 0 {
		json.Unmarshal(address, &order.Address)
	}

	return order, nil
}

const orderColumns = `
	id, order_number, user_id, subtotal, tax, discount, shipping_cost, total_amount,
	status, COALESCE(payment_method, ''), address, COALESCE(notes, ''), created_at, updated_at
`

func (r *OrderRepository) loadItems(order *models.Order) error {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, order_id, product_id, title, price, quantity FROM order_items WHERE order_id = $1`,
		order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Title, &item.Price, &item.Quantity); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return nil
}

func (r *OrderRepository) FindByID(id string) (*models.Order, error) {
	order, err := r.scanOrder(config.DB.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) FindByUser(userID string) ([]models.Order, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	rows.Close()

	for i := range orders {
		if err := r.loadItems(&orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *OrderRepository) FindAll(page, limit int, status string) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM orders`
	listQuery := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}

	if status != "" {
		countQuery += ` WHERE status = $1`
		listQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	var total int
	if err := config.DB.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(context.Background(), listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}

	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(id, status string) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalUsers    int     `json:"total_users"`
	TotalProducts int     `json:"total_products"`
}

func (r *OrderRepository) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	ctx := context.Background()

	err := config.DB.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(total_amount) FILTER (WHERE status != 'cancelled'), 0)
		FROM orders
	`).Scan(&stats.TotalOrders, &stats.PendingOrders, &stats.TotalRevenue)
	if err != nil {
		return nil, err
	}

	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		return nil, err
	}
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&stats.TotalProducts); err != nil {
		return nil, err
	}

	return stats, nil
}
