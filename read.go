package workout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	// ErrUnknownActivity is returned for an activity code with no training
	ErrUnknownActivity = errors.New("unknown activity code")
	// ErrArity is returned when the data does not match the training's inputs
	ErrArity = errors.New("wrong number of values")
)

// Code identifies the kind of training
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

type constructor struct {
	arity int
	f     func(data []float64) Training
}

var trainings = map[Code]constructor{
	CodeSwimming: {arity: 5, f: func(data []float64) Training {
		return NewSwimming(int(data[0]), data[1], data[2], data[3], int(data[4]))
	}},
	CodeRunning: {arity: 3, f: func(data []float64) Training {
		return NewRunning(int(data[0]), data[1], data[2])
	}},
	CodeWalking: {arity: 4, f: func(data []float64) Training {
		return NewSportsWalking(int(data[0]), data[1], data[2], data[3])
	}},
}

// NewTraining returns the training for `code` with `data` applied positionally
func NewTraining(code Code, data []float64) (Training, error) {
	c, ok := trainings[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, code)
	}
	if len(data) != c.arity {
		return nil, fmt.Errorf("%w: %s expects %d, found %d", ErrArity, code, c.arity, len(data))
	}
	return c.f(data), nil
}

// ReadPackage returns the training for the package
func ReadPackage(pkg Package) (Training, error) {
	log.Debug().Str("code", string(pkg.Code)).Floats64("data", pkg.Data).Msg("package")
	return NewTraining(pkg.Code, pkg.Data)
}

// Reports returns a report for each package in order, stopping at the first error
func Reports(pkgs []Package) ([]*Report, error) {
	var res []*Report
	for _, pkg := range pkgs {
		t, err := ReadPackage(pkg)
		if err != nil {
			return nil, err
		}
		res = append(res, t.Report())
	}
	return res, nil
}
