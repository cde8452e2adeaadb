package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"weather-be/internal/models"
	"weather-be/internal/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
	version     string
}

func NewUserController(userService service.UserService, version string) *UserController {
	return &UserController{
		userService: userService,
		version:     version,
	}
}

// CreateUser handles POST /user - registers a user and returns the API key.
// A successful registration answers 200 with the bare key as the body.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	apiKey, err := uc.userService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTermsNotAccepted):
			msg := "Terms and conditions needs to be accepted before proceeding with the registration: " + req.Username
			log.Printf("Error: %s", msg)
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		case errors.Is(err, service.ErrUserExists):
			msg := fmt.Sprintf("User already exists %s", req.Username)
			log.Printf("Error: %s", msg)
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.String(http.StatusOK, apiKey)
}

// GetVersion handles GET /user/version
func (uc *UserController) GetVersion(c *gin.Context) {
	c.String(http.StatusOK, uc.version)
}

// GetUserDetails handles GET /user/details?username=... - returns the user
// profile without the API key. An unknown username answers 400 with an empty
// body; a failed lookup answers 500.
func (uc *UserController) GetUserDetails(c *gin.Context) {
	username := c.Query("username")

	user, err := uc.userService.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user details"})
		return
	}
	if user == nil {
		log.Printf("Error: user doesnt exists %s", username)
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /user?apiKey=... - deletes unconditionally, no
// existence check, empty body on success.
func (uc *UserController) DeleteUser(c *gin.Context) {
	apiKey := c.Query("apiKey")

	if err := uc.userService.Delete(apiKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.Status(http.StatusOK)
}
