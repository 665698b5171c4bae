package momentum

import (
	"github.com/c9s/streamta/pkg/indicator"
)

// AwesomeOscillatorStream is the 5-period SMA of the median price minus its
// 34-period SMA.
//
// Median Price = (High + Low) / 2
// AO = 5-Period SMA - 34-Period SMA.
type AwesomeOscillatorStream struct {
	*indicator.CompositeStream

	MedianPrice indicator.Stream
}

// MedianPrice combines separate high and low streams into (high + low) / 2.
// Bar sources should use indicator.MedianPrices instead.
func MedianPrice(high, low indicator.Stream) *indicator.CompositeStream {
	return indicator.OverConst(indicator.Plus(high, low), 2)
}

func AwesomeOscillator(median indicator.Stream) (*AwesomeOscillatorStream, error) {
	return AwesomeOscillatorWithWindows(median, 5, 34)
}

func AwesomeOscillatorWithWindows(median indicator.Stream, fastWindow, slowWindow int) (*AwesomeOscillatorStream, error) {
	fast, err := indicator.SMAOf(median, fastWindow)
	if err != nil {
		return nil, err
	}

	slow, err := indicator.SMAOf(median, slowWindow)
	if err != nil {
		return nil, err
	}

	return &AwesomeOscillatorStream{
		CompositeStream: indicator.Minus(fast, slow),
		MedianPrice:     median,
	}, nil
}
