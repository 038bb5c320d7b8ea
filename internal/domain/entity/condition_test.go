package entity

import "testing"

func TestMapCondition(t *testing.T) {
	tests := map[string]struct {
		vendorMain string
		want       WeatherCondition
	}{
		"clear":                  {vendorMain: "Clear", want: ConditionClear},
		"clouds":                 {vendorMain: "Clouds", want: ConditionClouds},
		"rain":                   {vendorMain: "Rain", want: ConditionRain},
		"drizzle":                {vendorMain: "Drizzle", want: ConditionDrizzle},
		"snow":                   {vendorMain: "Snow", want: ConditionSnow},
		"thunderstorm":           {vendorMain: "Thunderstorm", want: ConditionThunderstorm},
		"mist":                   {vendorMain: "Mist", want: ConditionMist},
		"fog":                    {vendorMain: "Fog", want: ConditionFog},
		"haze":                   {vendorMain: "Haze", want: ConditionHaze},
		"smoke renders as mist":  {vendorMain: "Smoke", want: ConditionMist},
		"dust renders as mist":   {vendorMain: "Dust", want: ConditionMist},
		"sand renders as mist":   {vendorMain: "Sand", want: ConditionMist},
		"ash renders as mist":    {vendorMain: "Ash", want: ConditionMist},
		"squall renders as rain": {vendorMain: "Squall", want: ConditionRain},
		"tornado as storm":       {vendorMain: "Tornado", want: ConditionThunderstorm},
		"unknown defaults":       {vendorMain: "Meteor", want: ConditionClouds},
		"empty defaults":         {vendorMain: "", want: ConditionClouds},
		"case sensitive":         {vendorMain: "clear", want: ConditionClouds},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := MapCondition(tc.vendorMain); got != tc.want {
				t.Errorf("MapCondition(%q) = %q, want %q", tc.vendorMain, got, tc.want)
			}
		})
	}
}

func TestThemeFor(t *testing.T) {
	tests := map[string]struct {
		condition WeatherCondition
		isDay     bool
		want      WeatherTheme
	}{
		"clear day":          {condition: ConditionClear, isDay: true, want: ThemeClearDay},
		"clear night":        {condition: ConditionClear, isDay: false, want: ThemeClearNight},
		"clouds day":         {condition: ConditionClouds, isDay: true, want: ThemeCloudy},
		"clouds night":       {condition: ConditionClouds, isDay: false, want: ThemeClearNight},
		"rain day":           {condition: ConditionRain, isDay: true, want: ThemeRainy},
		"drizzle day":        {condition: ConditionDrizzle, isDay: true, want: ThemeRainy},
		"rain night":         {condition: ConditionRain, isDay: false, want: ThemeClearNight},
		"storm day":          {condition: ConditionThunderstorm, isDay: true, want: ThemeStorm},
		"storm keeps night":  {condition: ConditionThunderstorm, isDay: false, want: ThemeStorm},
		"snow day":           {condition: ConditionSnow, isDay: true, want: ThemeSnow},
		"snow keeps night":   {condition: ConditionSnow, isDay: false, want: ThemeSnow},
		"mist day":           {condition: ConditionMist, isDay: true, want: ThemeMist},
		"fog day":            {condition: ConditionFog, isDay: true, want: ThemeMist},
		"haze day":           {condition: ConditionHaze, isDay: true, want: ThemeMist},
		"unknown day":        {condition: WeatherCondition("weird"), isDay: true, want: ThemeClearDay},
		"unknown night":      {condition: WeatherCondition("weird"), isDay: false, want: ThemeClearNight},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ThemeFor(tc.condition, tc.isDay); got != tc.want {
				t.Errorf("ThemeFor(%q, %v) = %q, want %q", tc.condition, tc.isDay, got, tc.want)
			}
		})
	}
}

func TestIconURL(t *testing.T) {
	if got := IconURL("10d", "2x"); got != "https://openweathermap.org/img/wn/10d@2x.png" {
		t.Errorf("unexpected icon url: %q", got)
	}
	if got := IconURL("01n", ""); got != "https://openweathermap.org/img/wn/01n@4x.png" {
		t.Errorf("empty size should default to 4x, got %q", got)
	}
}
