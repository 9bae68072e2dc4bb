package services

import (
	"errors"

	"sanjeevika-shop/models"
	"sanjeevika-shop/repositories"
	"sanjeevika-shop/utils"
)

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	existingUser, _, _ := s.userRepo.FindByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
		Role:   "customer",
	}

	if err := s.userRepo.Create(user, hashedPassword); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    user,
		Token:   token,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, hashedPassword, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(hashedPassword, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
		Token:   token,
	}, nil
}

func (s *AuthService) GetProfile(userID string) (*models.User, error) {
	user, _, err := s.userRepo.FindByID(userID)
	return user, err
}

func (s *AuthService) UpdateProfile(userID string, update models.UserUpdate) (*models.User, error) {
	user, _, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	update.Apply(user)

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(userID string, req models.ChangePasswordRequest) error {
	_, hashedPassword, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(hashedPassword, req.OldPassword)
	if err != nil || !valid {
		return errors.New("invalid old password")
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, newHash)
}
