package indicator

import (
	"github.com/c9s/streamta/pkg/types"
)

const MaxNumOfKLines = 5_000

// KLineStream is the bar-level leaf. Pushed bars are kept in a bounded
// lookback window and forwarded to the subscribers, usually price streams.
//
//go:generate callbackgen -type KLineStream
type KLineStream struct {
	updateCallbacks []func(k types.KLine)

	symbol   string
	interval types.Interval

	kLines *types.Window[types.KLine]
}

func KLines(symbol string, interval types.Interval) *KLineStream {
	return &KLineStream{
		symbol:   symbol,
		interval: interval,
		kLines:   types.MustNewWindow[types.KLine](MaxNumOfKLines),
	}
}

func (s *KLineStream) Symbol() string {
	return s.symbol
}

func (s *KLineStream) Interval() types.Interval {
	return s.interval
}

func (s *KLineStream) Length() int {
	return s.kLines.Count()
}

// Last returns the i-th most recent bar, or nil when out of range.
func (s *KLineStream) Last(i int) *types.KLine {
	if i < 0 || i >= s.kLines.Count() {
		return nil
	}

	k := s.kLines.At(i)
	return &k
}

// Push appends a bar of the stream's symbol and interval; other bars are
// ignored. Bars must arrive in end time order.
func (s *KLineStream) Push(k types.KLine) bool {
	if s.symbol != "" && k.Symbol != s.symbol {
		return false
	}

	if s.interval != "" && k.Interval != s.interval {
		return false
	}

	if last := s.Last(0); last != nil && k.EndTime.Before(last.EndTime) {
		panic(&ForwardOnlyError{
			Name:     "KLines(" + s.symbol + ")",
			Previous: last.EndTime,
			Given:    k.EndTime,
		})
	}

	s.kLines.Add(k)
	s.EmitUpdate(k)
	return true
}

func (s *KLineStream) Reset() {
	s.kLines.Reset()
}

type KLineSubscription interface {
	OnUpdate(cb func(k types.KLine))
}

// PriceStream maps every bar of a subscription to a price sample stamped
// with the bar end time.
type PriceStream struct {
	*StreamBase
	mapper types.KLinePriceMapper
}

func Price(name string, source KLineSubscription, mapper types.KLinePriceMapper) *PriceStream {
	s := &PriceStream{
		StreamBase: NewStreamBase(name),
		mapper:     mapper,
	}

	if source != nil {
		source.OnUpdate(s.PushK)
	}

	return s
}

func ClosePrices(source KLineSubscription) *PriceStream {
	return Price("CLOSE", source, types.KLineClosePriceMapper)
}

func OpenPrices(source KLineSubscription) *PriceStream {
	return Price("OPEN", source, types.KLineOpenPriceMapper)
}

func HighPrices(source KLineSubscription) *PriceStream {
	return Price("HIGH", source, types.KLineHighPriceMapper)
}

func LowPrices(source KLineSubscription) *PriceStream {
	return Price("LOW", source, types.KLineLowPriceMapper)
}

func TypicalPrices(source KLineSubscription) *PriceStream {
	return Price("TYPICAL", source, types.KLineTypicalPriceMapper)
}

// MedianPrices streams (high + low) / 2 of each bar.
func MedianPrices(source KLineSubscription) *PriceStream {
	return Price("MEDIAN", source, types.KLineMedianPriceMapper)
}

func Volumes(source KLineSubscription) *PriceStream {
	return Price("VOLUME", source, types.KLineVolumeMapper)
}

// PushK maps the bar and updates the stream.
func (s *PriceStream) PushK(k types.KLine) {
	s.Update(types.MapKLinePrice(k, s.mapper))
}

func (s *PriceStream) Update(in types.Sample) bool {
	s.Process(in, PassThrough)
	return s.IsReady()
}

func (s *PriceStream) IsReady() bool {
	return s.Samples() > 0
}

var _ Stream = &PriceStream{}
