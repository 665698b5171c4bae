package types

import (
	"fmt"
	"time"
)

// KLine is the bar type fed into the price sources.
type KLine struct {
	Symbol   string   `json:"symbol"`
	Interval Interval `json:"interval"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume float64 `json:"volume"`

	Closed bool `json:"closed"`
}

func (k *KLine) Mid() float64 {
	return (k.High + k.Low) / 2
}

func (k KLine) String() string {
	return fmt.Sprintf("%s %s %s O: %.4f H: %.4f L: %.4f C: %.4f V: %.4f",
		k.Symbol, k.Interval, k.EndTime.Format(time.RFC3339),
		k.Open, k.High, k.Low, k.Close, k.Volume)
}

// KLinePriceMapper extracts the scalar that a price source pushes downstream.
type KLinePriceMapper func(k KLine) float64

func KLineOpenPriceMapper(k KLine) float64 {
	return k.Open
}

func KLineClosePriceMapper(k KLine) float64 {
	return k.Close
}

func KLineHighPriceMapper(k KLine) float64 {
	return k.High
}

func KLineLowPriceMapper(k KLine) float64 {
	return k.Low
}

func KLineMedianPriceMapper(k KLine) float64 {
	return k.Mid()
}

func KLineTypicalPriceMapper(k KLine) float64 {
	return (k.High + k.Low + k.Close) / float64(3)
}

func KLineVolumeMapper(k KLine) float64 {
	return k.Volume
}

// MapKLinePrice converts the given bar into a sample stamped with the bar end time.
func MapKLinePrice(k KLine, f KLinePriceMapper) Sample {
	return Sample{Time: k.EndTime, Value: f(k)}
}
