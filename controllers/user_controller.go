package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sanjeevika-shop/models"
	"sanjeevika-shop/repositories"
	"sanjeevika-shop/utils"
)

type UserController struct {
	userRepo *repositories.UserRepository
}

func NewUserController() *UserController {
	return &UserController{userRepo: repositories.NewUserRepository()}
}

// GetAllUsers godoc
// @Summary Get all users
// @Description Get paginated list of users (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, total, err := ctrl.userRepo.FindAll(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Users retrieved",
		Data:    users,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetUserByID godoc
// @Summary Get user by ID
// @Description Get a single user (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	user, _, err := ctrl.userRepo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "User not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "User retrieved", Data: user})
}

// CreateUser godoc
// @Summary Create user
// @Description Create a user account (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AdminCreateUserRequest true "User"
// @Success 201 {object} models.Response
// @Router /admin/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if existing, _, _ := ctrl.userRepo.FindByEmail(req.Email); existing != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create user"})
		return
	}

	user := &models.User{
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
		Role:   req.Role,
	}

	if err := ctrl.userRepo.Create(user, hash); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "User created", Data: user})
}

// UpdateUser godoc
// @Summary Update user
// @Description Update a user's profile fields (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UserUpdate true "Update"
// @Success 200 {object} models.Response
// @Router /admin/users/{id} [patch]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	user, _, err := ctrl.userRepo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "User not found"})
		return
	}

	req.Apply(user)

	if err := ctrl.userRepo.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "User updated", Data: user})
}

// DeleteUser godoc
// @Summary Delete user
// @Description Delete a user account (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	if err := ctrl.userRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "User deleted"})
}
