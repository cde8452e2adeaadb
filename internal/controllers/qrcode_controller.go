package controllers

import (
	"net/http"

	"weather-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	userService service.UserService
}

func NewQRCodeController(userService service.UserService) *QRCodeController {
	return &QRCodeController{
		userService: userService,
	}
}

// GenerateAPIKeyQRCode handles GET /user/apikey/qrcode?apiKey=... - encodes a
// registered API key as a PNG QR code so it can be scanned into a mobile
// client. Unknown keys are rejected the same way the weather endpoint does.
func (qc *QRCodeController) GenerateAPIKeyQRCode(c *gin.Context) {
	apiKey := c.Query("apiKey")

	user, err := qc.userService.GetByAPIKey(apiKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate API key"})
		return
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid API key " + apiKey})
		return
	}

	// Generate QR code (256x256 pixels, medium error recovery)
	pngData, err := qrcode.Encode(apiKey, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Header("Content-Disposition", "inline; filename=apikey.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
