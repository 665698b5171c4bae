package trend

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/types"
)

//  Aroon Indicator

// The Aroon indicator is used to identify trend changes in the price of an asset,
// as well as the strength of that trend. It consists of two lines, Aroon Up, and Aroon Down.
// The Aroon Up line measures the strength of the uptrend, and the Aroon Down measures
// the strength of the downtrend. When Aroon Up is above Aroon Down, it indicates bullish price,
// and when Aroon Down is above Aroon Up, it indicates bearish price.
//
// ```
//
//	Aroon Up = ((25 - Period Since Last 25 Period High) / 25) * 100
//	Aroon Down = ((25 - Period Since Last 25 Period Low) / 25) * 100
//
// ```
//
// https://www.investopedia.com/terms/a/aroon.asp
//
// AroonStream is the oscillator (Up - Down). Up and Down are functional
// streams that can be subscribed to on their own.
type AroonStream struct {
	*indicator.CompositeStream

	window int

	Up, Down *indicator.FunctionalStream
}

// AroonUpIndicator returns a stream of the number of periods since the
// highest value of the source in the window, scaled to [0, 100].
//
// Note: this indicator should be constructed with a high price stream or a derivative thereof
func AroonUpIndicator(source indicator.Stream, window int) (*indicator.FunctionalStream, error) {
	if window < 1 {
		return nil, errors.Wrapf(indicator.ErrInvalidParameter, "AROON_UP: window %d is less than 1", window)
	}

	maximum, err := indicator.NewMaximum(fmt.Sprintf("AROON_MAX(%d)", window), window+1)
	if err != nil {
		return nil, err
	}

	return aroonLine(fmt.Sprintf("AROON_UP(%d)", window), source, maximum, window), nil
}

// AroonDownIndicator returns a stream of the number of periods since the
// lowest value of the source in the window, scaled to [0, 100].
//
// Note: this indicator should be constructed with a low price stream or a derivative thereof
func AroonDownIndicator(source indicator.Stream, window int) (*indicator.FunctionalStream, error) {
	if window < 1 {
		return nil, errors.Wrapf(indicator.ErrInvalidParameter, "AROON_DOWN: window %d is less than 1", window)
	}

	minimum, err := indicator.NewMinimum(fmt.Sprintf("AROON_MIN(%d)", window), window+1)
	if err != nil {
		return nil, err
	}

	return aroonLine(fmt.Sprintf("AROON_DOWN(%d)", window), source, minimum, window), nil
}

func aroonLine(name string, source indicator.Stream, extremum *indicator.ExtremumStream, window int) *indicator.FunctionalStream {
	line := indicator.Functional(name,
		func(in types.Sample) float64 {
			extremum.Update(in)
			return 100.0 * float64(window-extremum.PeriodsSinceExtremum()) / float64(window)
		},
		func(_ *indicator.FunctionalStream) bool {
			return extremum.IsReady()
		},
		extremum.Reset)

	indicator.Bind(source, line)
	return line
}

func Aroon(high, low indicator.Stream, window int) (*AroonStream, error) {
	up, err := AroonUpIndicator(high, window)
	if err != nil {
		return nil, err
	}

	down, err := AroonDownIndicator(low, window)
	if err != nil {
		return nil, err
	}

	return &AroonStream{
		CompositeStream: indicator.Minus(up, down),
		window:          window,
		Up:              up,
		Down:            down,
	}, nil
}
