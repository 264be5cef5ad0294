// Package weather reads current conditions from the Open-Meteo
// forecast API and renders them as the press's front-page line.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the public Open-Meteo API root.
const DefaultBaseURL = "https://api.open-meteo.com/v1"

// DefaultTimeout bounds each fetch.
const DefaultTimeout = 10 * time.Second

// NotFoundLine replaces the weather report when conditions cannot be
// fetched.
const NotFoundLine = "Weather data not found."

// Client queries the Open-Meteo forecast endpoint. The zero value uses
// the public API with a default timeout.
type Client struct {
	// BaseURL is the API root without a trailing slash.
	// Default: DefaultBaseURL.
	BaseURL string

	// Client is the HTTP client used for requests. Default: a client
	// with a 10 second timeout.
	Client *http.Client
}

// NewClient creates a client for the public API.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Report is the current weather at one location.
type Report struct {
	// TempC is the 2 m air temperature in degrees Celsius.
	TempC float64

	// Code is the WMO weather interpretation code.
	Code int
}

// Current fetches the present conditions at a coordinate.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Report, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,weather_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/forecast?"+q.Encode(), nil)
	if err != nil {
		return Report{}, errors.Wrap(err, "building forecast request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return Report{}, errors.Wrap(err, "fetching forecast")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, errors.Errorf("forecast: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Current *struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, errors.Wrap(err, "decoding forecast")
	}
	if payload.Current == nil {
		return Report{}, errors.New("forecast response carries no current block")
	}
	return Report{TempC: payload.Current.Temperature, Code: payload.Current.WeatherCode}, nil
}

// Describe renders the report as the front-page line.
//
// Example:
//
//	Report{TempC: 21.4, Code: 2}.Describe("Morges")
//	// "Weather in Morges: 21.4°C, Partly cloudy"
func (r Report) Describe(city string) string {
	return fmt.Sprintf("Weather in %s: %s°C, %s",
		city, strconv.FormatFloat(r.TempC, 'f', -1, 64), CodeDescription(r.Code))
}

// CodeDescription translates a WMO weather interpretation code into
// prose. Codes outside the table read "Unknown conditions".
func CodeDescription(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return "Unknown conditions"
}

// wmoDescriptions is the WMO interpretation table published with the
// Open-Meteo API.
var wmoDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with heavy hail",
}
