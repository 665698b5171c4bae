package csvsource

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time unix milli format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVKLineDecoder is an extension point for CSVKLineReader to support custom file formats.
type CSVKLineDecoder func(record []string, interval time.Duration) (types.KLine, error)

// NewBinanceCSVKLineReader creates a new CSVKLineReader for Binance CSV files.
func NewBinanceCSVKLineReader(csv CSVRecordReader) *CSVKLineReader {
	return NewCSVKLineReaderWithDecoder(csv, BinanceCSVKLineDecoder)
}

// BinanceCSVKLineDecoder decodes a CSV record from Binance or Bybit into a KLine.
// The volume column is optional.
func BinanceCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 5 {
		return empty, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	k.StartTime = time.UnixMilli(msec).UTC()
	k.EndTime = k.StartTime.Add(interval)
	if err := decodeOHLCV(&k, record[1:]); err != nil {
		return empty, err
	}

	k.Closed = true
	return k, nil
}

// NewMetaTraderCSVKLineReader creates a new CSVKLineReader for MetaTrader CSV files.
func NewMetaTraderCSVKLineReader(csv CSVRecordReader) *CSVKLineReader {
	return NewCSVKLineReaderWithDecoder(csv, MetaTraderCSVKLineDecoder)
}

// MetaTraderCSVKLineDecoder decodes a CSV record from MetaTrader into a KLine.
func MetaTraderCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 6 {
		return empty, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	k.StartTime = t
	k.EndTime = t.Add(interval)
	if err := decodeOHLCV(&k, record[2:]); err != nil {
		return empty, err
	}

	k.Closed = true
	return k, nil
}

// decodeOHLCV parses open, high, low, close and an optional volume column.
func decodeOHLCV(k *types.KLine, cols []string) error {
	prices := []*float64{&k.Open, &k.High, &k.Low, &k.Close}
	for i, p := range prices {
		v, err := strconv.ParseFloat(cols[i], 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidPriceFormat, "column %d: %q", i, cols[i])
		}
		*p = v
	}

	if len(cols) > 4 && cols[4] != "" {
		v, err := strconv.ParseFloat(cols[4], 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidVolumeFormat, "%q", cols[4])
		}
		k.Volume = v
	}

	return nil
}
