package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

//go:generate mockgen -source=weather_service.go -destination=mocks/mock_weather_service.go -package=mocks

// WeatherService defines the interface for the mock weather lookup
type WeatherService interface {
	Temperature(location string) (string, error)
}

type weatherService struct {
	defaultCity     string
	defaultCityTemp string
	low             int // inclusive
	high            int // exclusive
}

// NewWeatherService creates a weather service that returns defaultCityTemp
// verbatim for the default city and a random temperature in [low, high)
// everywhere else.
func NewWeatherService(defaultCity, defaultCityTemp string, low, high int) WeatherService {
	return &weatherService{
		defaultCity:     defaultCity,
		defaultCityTemp: defaultCityTemp,
		low:             low,
		high:            high,
	}
}

// Temperature returns the mock temperature for a location. The default-city
// match is case-insensitive.
func (s *weatherService) Temperature(location string) (string, error) {
	if s.defaultCity != "" && strings.EqualFold(location, s.defaultCity) {
		return s.defaultCityTemp, nil
	}

	// Config validates the range at startup; this guards a service built
	// with bad bounds directly.
	if s.high <= s.low {
		return "", fmt.Errorf("invalid temperature range [%d, %d)", s.low, s.high)
	}

	return strconv.Itoa(rand.Intn(s.high-s.low) + s.low), nil
}
