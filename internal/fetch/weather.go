package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// WeatherBaseURL is the default OpenWeatherMap API endpoint.
const WeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Weather is the exported shape of one current-weather record.
type Weather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Timestamp   string  `json:"timestamp"`
}

// CSVHeader implements CSVRecord.
func (Weather) CSVHeader() []string {
	return []string{"city", "temperature", "feels_like", "description", "humidity", "wind_speed", "timestamp"}
}

// CSVRow implements CSVRecord.
func (w Weather) CSVRow() []string {
	return []string{
		w.City,
		strconv.FormatFloat(w.Temperature, 'f', -1, 64),
		strconv.FormatFloat(w.FeelsLike, 'f', -1, 64),
		w.Description,
		strconv.Itoa(w.Humidity),
		strconv.FormatFloat(w.WindSpeed, 'f', -1, 64),
		w.Timestamp,
	}
}

// weatherResponse is the wire shape of the fields we read from the API.
type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// CurrentWeather fetches the current weather for city in metric units.
// An API key is required; callers without one should use [DemoWeather].
func CurrentWeather(ctx context.Context, c *Client, city, apiKey string) (Weather, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", apiKey)
	params.Set("units", "metric")

	var raw weatherResponse
	if err := c.Get(ctx, "weather", params, &raw); err != nil {
		return Weather{}, err
	}

	w := Weather{
		City:        raw.Name,
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if len(raw.Weather) > 0 {
		w.Description = raw.Weather[0].Description
	}
	if w.City == "" {
		return Weather{}, fmt.Errorf("no weather data for %q", city)
	}
	return w, nil
}

// DemoWeather returns fixed demonstration data for city, used when no API
// key is configured.
func DemoWeather(city string, now time.Time) Weather {
	return Weather{
		City:        city,
		Temperature: 22.5,
		FeelsLike:   21.8,
		Description: "Partly cloudy",
		Humidity:    65,
		WindSpeed:   3.5,
		Timestamp:   now.Format(time.RFC3339),
	}
}
