package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"weather-be/internal/controllers"
	"weather-be/internal/entities"
	"weather-be/internal/service/mocks"
)

func newWeatherRouter(t *testing.T) (*gin.Engine, *mocks.MockUserService, *mocks.MockWeatherService) {
	ctrl := gomock.NewController(t)
	userService := mocks.NewMockUserService(ctrl)
	weatherService := mocks.NewMockWeatherService(ctrl)

	wc := controllers.NewWeatherController(userService, weatherService)
	router := gin.New()
	router.GET("/user/weather", wc.GetWeatherData)
	return router, userService, weatherService
}

func TestGetWeatherData_Success(t *testing.T) {
	router, userService, weatherService := newWeatherRouter(t)

	userService.EXPECT().GetByAPIKey("key-1").Return(&entities.User{Username: "alice", APIKey: "key-1"}, nil)
	weatherService.EXPECT().Temperature("Paris").Return("23", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/weather?apiKey=key-1&location=Paris", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "23", w.Body.String())
}

func TestGetWeatherData_InvalidAPIKey(t *testing.T) {
	router, userService, _ := newWeatherRouter(t)

	// Unknown key is rejected before any weather lookup, whatever the location
	userService.EXPECT().GetByAPIKey("bogus").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/weather?apiKey=bogus&location=Paris", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key bogus")
}

func TestGetWeatherData_KeyLookupFailure(t *testing.T) {
	router, userService, _ := newWeatherRouter(t)

	userService.EXPECT().GetByAPIKey("key-1").Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/weather?apiKey=key-1&location=Paris", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetWeatherData_WeatherFailure(t *testing.T) {
	router, userService, weatherService := newWeatherRouter(t)

	userService.EXPECT().GetByAPIKey("key-1").Return(&entities.User{Username: "alice", APIKey: "key-1"}, nil)
	weatherService.EXPECT().Temperature("Paris").Return("", errors.New("invalid temperature range [10, 10)"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/weather?apiKey=key-1&location=Paris", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error while fetching weather data")
}
