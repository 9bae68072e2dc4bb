package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sanjeevika-shop/config"
	"sanjeevika-shop/models"
)

type ContactController struct {
	mailer *models.EmailService
}

func NewContactController() *ContactController {
	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		mailer = nil
	}
	return &ContactController{mailer: mailer}
}

// SubmitContact godoc
// @Summary Submit contact form
// @Description Record a contact form message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 201 {object} models.Response
// @Router /contact [post]
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Name, email and message are required"})
		return
	}

	_, err := config.DB.Exec(context.Background(),
		`INSERT INTO contact_messages (name, email, subject, message, created_at) VALUES ($1, $2, $3, $4, $5)`,
		req.Name, req.Email, req.Subject, req.Message, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Thank you for contacting us. We'll get back to you soon."})
}

// SubscribeNewsletter godoc
// @Summary Subscribe to newsletter
// @Description Add an email to the newsletter list; subscribing twice is a no-op
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.NewsletterRequest true "Email"
// @Success 201 {object} models.Response
// @Router /newsletter [post]
func (ctrl *ContactController) SubscribeNewsletter(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "A valid email is required"})
		return
	}

	tag, err := config.DB.Exec(context.Background(),
		`INSERT INTO newsletter_subscribers (email, created_at) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
		req.Email, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to subscribe"})
		return
	}

	if tag.RowsAffected() > 0 && ctrl.mailer != nil {
		if err := ctrl.mailer.SendNewsletterWelcome(req.Email); err != nil {
			log.Println("Failed to send newsletter welcome:", err)
		}
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Subscribed to newsletter"})
}
