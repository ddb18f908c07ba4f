package world

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/dice"
)

type Weather string

const (
	Clear  Weather = "clear"
	Cloudy Weather = "cloudy"
	Rainy  Weather = "rainy"
	Stormy Weather = "stormy"
	Foggy  Weather = "foggy"
	Windy  Weather = "windy"
)

// AllWeather lists every weather condition.
var AllWeather = []Weather{Clear, Cloudy, Rainy, Stormy, Foggy, Windy}

var weatherDescriptions = map[Weather]string{
	Clear:  "The sky is clear and the sun is shining brightly.",
	Cloudy: "Gray clouds cover the sky, blocking out the sun.",
	Rainy:  "A steady rain is falling, creating puddles on the ground.",
	Stormy: "Dark clouds loom overhead as thunder rumbles in the distance.",
	Foggy:  "A thick fog has settled in, limiting visibility to just a few feet.",
	Windy:  "Strong gusts of wind blow through the area, rustling leaves and branches.",
}

// ParseWeather converts a string to a Weather, ignoring case.
func ParseWeather(s string) (Weather, error) {
	w := Weather(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", fmt.Errorf("unknown weather %q", s)
	}
	return w, nil
}

func (w Weather) Valid() bool {
	_, ok := weatherDescriptions[w]
	return ok
}

// Describe returns a sentence about the weather.
func (w Weather) Describe() string {
	if d, ok := weatherDescriptions[w]; ok {
		return d
	}
	return "The weather is unremarkable."
}

// RandomWeather picks a weather condition uniformly.
func RandomWeather(d *dice.Engine) Weather {
	options := make([]string, len(AllWeather))
	for i, w := range AllWeather {
		options[i] = string(w)
	}
	return Weather(d.Pick(options...))
}
