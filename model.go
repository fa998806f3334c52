package workout

import "fmt"

// Report is the summary of a completed workout
type Report struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Calories float64 `json:"calories"`
}

func (r *Report) String() string {
	return FormatReport(r)
}

// FormatReport renders the report as a single summary line
func FormatReport(r *Report) string {
	return fmt.Sprintf(
		"Activity type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories: %.3f.",
		r.Type, r.Duration, r.Distance, r.Speed, r.Calories)
}

// Package is the raw sensor data for a single workout
type Package struct {
	Code Code      `json:"code"`
	Data []float64 `json:"data"`
}

type Config struct {
	Packages []Package `json:"packages"`
}
