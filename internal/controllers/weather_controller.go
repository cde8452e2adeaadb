package controllers

import (
	"log"
	"net/http"

	"weather-be/internal/service"

	"github.com/gin-gonic/gin"
)

type WeatherController struct {
	userService    service.UserService
	weatherService service.WeatherService
}

func NewWeatherController(userService service.UserService, weatherService service.WeatherService) *WeatherController {
	return &WeatherController{
		userService:    userService,
		weatherService: weatherService,
	}
}

// GetWeatherData handles GET /user/weather?apiKey=...&location=... - returns
// the temperature for a location as a plain string. The API key must belong
// to a registered user.
func (wc *WeatherController) GetWeatherData(c *gin.Context) {
	apiKey := c.Query("apiKey")
	location := c.Query("location")

	user, err := wc.userService.GetByAPIKey(apiKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate API key"})
		return
	}
	if user == nil {
		msg := "Invalid API key " + apiKey
		log.Printf("Error: %s", msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	temperature, err := wc.weatherService.Temperature(location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching weather data " + err.Error()})
		return
	}

	c.String(http.StatusOK, temperature)
}
