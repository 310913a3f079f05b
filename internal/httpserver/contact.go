package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type contactRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,min=7,max=20"`
	Interest string `json:"interest" binding:"required"`
	Message  string `json:"message" binding:"required,min=10,max=500"`
}

var contactMessages = map[string]string{
	"Name":     "Name must be between 2 and 50 characters.",
	"Email":    "Please enter a valid email address.",
	"Phone":    "Please enter a valid phone number.",
	"Interest": "Please select an area of interest.",
	"Message":  "Message must be between 10 and 500 characters.",
}

func (h *handlers) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			badRequest(c, "invalid contact payload")
			return
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field()[:1])+fe.Field()[1:]] = contactMessages[fe.Field()]
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	h.logger.Printf("http: contact name=%q email=%s interest=%s", req.Name, req.Email, req.Interest)
	c.JSON(http.StatusOK, gin.H{"status": "received", "message": "Thank you for your message. We'll get back to you soon."})
}
