package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sanjeevika-shop/config"
	"sanjeevika-shop/models"
	"sanjeevika-shop/services"
	"sanjeevika-shop/utils"
)

type ProductController struct {
	productService *services.ProductService
	cloudinary     *models.CloudinaryService
}

func NewProductController() *ProductController {
	cld, err := models.NewCloudinaryService()
	if err != nil {
		log.Println("Cloudinary disabled, using local uploads:", err)
		cld = nil
	}

	return &ProductController{
		productService: services.NewProductService(),
		cloudinary:     cld,
	}
}

func productCacheKey(page, limit int) string {
	return "products_list_p" + strconv.Itoa(page) + "_l" + strconv.Itoa(limit)
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Get paginated list of active products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	cacheKey := productCacheKey(page, limit)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	resp, err := ctrl.productService.GetAll(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve products"})
		return
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(resp)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(http.StatusOK, resp)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// GetProductsByCategory godoc
// @Summary Get products by category
// @Description Get active products in a category
// @Tags Products
// @Produce json
// @Param category path string true "Category slug"
// @Success 200 {object} models.Response
// @Router /products/category/{category} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	products, err := ctrl.productService.GetByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve products"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	product, err := ctrl.productService.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create product"})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product created", Data: product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update an existing product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Product"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	product, err := ctrl.productService.Update(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product updated", Data: product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.productService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete product"})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product deleted"})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Upload an image for a product (Admin). Uses Cloudinary when configured, local storage otherwise.
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Image required"})
		return
	}

	var imageURL string
	if ctrl.cloudinary != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Failed to read image"})
			return
		}
		defer file.Close()

		imageURL, _, err = ctrl.cloudinary.UploadProductImage(c.Request.Context(), file, fileHeader.Filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
	} else {
		imageURL, err = utils.UploadFile(c, fileHeader, "products")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
	}

	product, err := ctrl.productService.Update(c.Param("id"), models.UpdateProductRequest{Image: imageURL})
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Image uploaded", Data: product})
}
