package trend

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/indicator"
)

// MACDStream is the MACD line (fast EMA - slow EMA). The signal line and the
// histogram hang off it as separate streams.
type MACDStream struct {
	*indicator.CompositeStream

	FastEMA, SlowEMA, SignalEMA *indicator.EMAStream

	Signal    *indicator.FunctionalStream
	Histogram *indicator.CompositeStream
}

func MACD(source indicator.Stream, shortWindow, longWindow, signalWindow int) (*MACDStream, error) {
	if shortWindow >= longWindow {
		return nil, errors.Wrapf(indicator.ErrInvalidParameter,
			"MACD: short window %d must be less than long window %d", shortWindow, longWindow)
	}

	fastEMA, err := indicator.NewEMA(fmt.Sprintf("MACD_FAST(%d)", shortWindow), shortWindow)
	if err != nil {
		return nil, err
	}

	slowEMA, err := indicator.NewEMA(fmt.Sprintf("MACD_SLOW(%d)", longWindow), longWindow)
	if err != nil {
		return nil, err
	}

	signalEMA, err := indicator.NewEMA(fmt.Sprintf("MACD_SIGNAL(%d)", signalWindow), signalWindow)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("MACD(%d,%d,%d)", shortWindow, longWindow, signalWindow)

	// bind and calculate these first
	macd := indicator.Composite(name, indicator.Of(fastEMA, source), indicator.Of(slowEMA, source), indicator.Subtract)
	signal := indicator.Of(signalEMA, macd)
	histogram := indicator.Minus(macd, signal)

	return &MACDStream{
		CompositeStream: macd,
		FastEMA:         fastEMA,
		SlowEMA:         slowEMA,
		SignalEMA:       signalEMA,
		Signal:          signal,
		Histogram:       histogram,
	}, nil
}

func (s *MACDStream) IsReady() bool {
	return s.Histogram.IsReady()
}

// Reset resets the whole MACD subgraph through the histogram.
func (s *MACDStream) Reset() {
	s.Histogram.Reset()
}
