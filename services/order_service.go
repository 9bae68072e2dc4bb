package services

import (
	"errors"
	"log"

	"sanjeevika-shop/models"
	"sanjeevika-shop/repositories"
)

type OrderService struct {
	orderRepo *repositories.OrderRepository
	userRepo  *repositories.UserRepository
	mailer    *models.EmailService
}

func NewOrderService() *OrderService {
	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		mailer = nil
	}

	return &OrderService{
		orderRepo: repositories.NewOrderRepository(),
		userRepo:  repositories.NewUserRepository(),
		mailer:    mailer,
	}
}

// Checkout prices the submitted cart lines server-side and records the order.
// The confirmation email is best effort.
func (s *OrderService) Checkout(userID string, req models.CheckoutRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, errors.New("item quantity must be at least 1")
		}
	}

	totals := models.ComputeCheckoutTotals(req.Items, req.TaxType)

	order := &models.Order{
		UserID:        userID,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		ShippingCost:  totals.ShippingCost,
		TotalAmount:   totals.Total,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		Address:       &req.Address,
		Notes:         req.Notes,
	}

	for _, line := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if user, _, err := s.userRepo.FindByID(userID); err == nil {
			if err := s.mailer.SendOrderConfirmation(user.Email, order.OrderNumber, order.TotalAmount); err != nil {
				log.Println("Failed to send order confirmation:", err)
			}
		}
	}

	return order, nil
}

func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

func (s *OrderService) GetByID(id string) (*models.Order, error) {
	return s.orderRepo.FindByID(id)
}

func (s *OrderService) GetAll(page, limit int, status string) ([]models.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return s.orderRepo.FindAll(page, limit, status)
}

func (s *OrderService) UpdateStatus(id, status string) error {
	return s.orderRepo.UpdateStatus(id, status)
}

func (s *OrderService) GetDashboardStats() (*repositories.DashboardStats, error) {
	return s.orderRepo.GetDashboardStats()
}
