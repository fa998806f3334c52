package workout

import (
	"math"

	"github.com/martinlindhe/unit"
)

const (
	// LenStep is the length of a single step in meters
	LenStep = 0.65
	// SwimLenStep is the length of a single stroke in meters
	SwimLenStep = 1.38
	// MInKm is the number of meters in a kilometer
	MInKm = 1000
	// MinInH is the number of minutes in an hour
	MinInH = 60

	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20

	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029

	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Training computes the statistics of a single workout
type Training interface {
	// Distance in kilometers
	Distance() float64
	// MeanSpeed in kilometers per hour
	MeanSpeed() float64
	// Calories burned in kcal
	Calories() float64
	// Report summarizes the workout
	Report() *Report
}

type training struct {
	action   int
	duration float64
	weight   float64
}

func (t *training) distance(step float64) float64 {
	l := unit.Length(float64(t.action)*step) * unit.Meter
	return l.Kilometers()
}

func (t *training) report(name string, tr Training) *Report {
	return &Report{
		Type:     name,
		Duration: t.duration,
		Distance: tr.Distance(),
		Speed:    tr.MeanSpeed(),
		Calories: tr.Calories(),
	}
}

// Running is a run measured in steps
type Running struct {
	training
}

// NewRunning returns a run of `action` steps over `duration` hours by an athlete of `weight` kg
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{training{action: action, duration: duration, weight: weight}}
}

func (r *Running) Distance() float64 {
	return r.distance(LenStep)
}

func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.duration
}

func (r *Running) Calories() float64 {
	val := (runCaloriesSpeedMultiplier*r.MeanSpeed() - runCaloriesSpeedShift) * r.weight
	return (val / MInKm) * (r.duration * MinInH)
}

func (r *Running) Report() *Report {
	return r.report("Running", r)
}

// SportsWalking is a walk measured in steps which also accounts for the athlete's height
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking returns a walk of `action` steps; `height` shares the unit used by the sensor
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		training: training{action: action, duration: duration, weight: weight},
		height:   height,
	}
}

func (w *SportsWalking) Distance() float64 {
	return w.distance(LenStep)
}

func (w *SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// Calories floors the speed-to-height ratio before weighting it
func (w *SportsWalking) Calories() float64 {
	ratio := math.Floor(math.Pow(w.MeanSpeed(), 2) / w.height)
	val := walkCaloriesWeightMultiplier*w.weight + ratio*walkCaloriesSpeedMultiplier*w.weight
	return val * w.duration * MinInH
}

func (w *SportsWalking) Report() *Report {
	return w.report("SportsWalking", w)
}

// Swimming is a swim measured in strokes and pool laps
type Swimming struct {
	training
	lengthPool float64
	countPool  int
}

// NewSwimming returns a swim of `action` strokes and `countPool` laps of a `lengthPool` meter pool
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) *Swimming {
	return &Swimming{
		training:   training{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

func (s *Swimming) Distance() float64 {
	return s.distance(SwimLenStep)
}

// MeanSpeed uses the laps swum rather than the stroke distance
func (s *Swimming) MeanSpeed() float64 {
	l := unit.Length(s.lengthPool*float64(s.countPool)) * unit.Meter
	return l.Kilometers() / s.duration
}

func (s *Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.weight
}

func (s *Swimming) Report() *Report {
	return s.report("Swimming", s)
}
