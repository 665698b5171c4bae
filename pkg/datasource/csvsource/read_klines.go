package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/types"
)

// KLineReader is an interface for reading candlesticks.
type KLineReader interface {
	Read(interval time.Duration) (types.KLine, error)
	ReadAll(interval time.Duration) ([]types.KLine, error)
}

// Format selects the CSV layout of a kline file.
type Format string

const (
	FormatBinance    Format = "binance"
	FormatMetaTrader Format = "metatrader"
)

// ReaderMaker returns the reader factory for the format.
func (f Format) ReaderMaker() (MakeCSVKLineReader, error) {
	switch f {
	case FormatBinance, "":
		return NewBinanceCSVKLineReader, nil
	case FormatMetaTrader:
		return NewMetaTraderCSVKLineReader, nil
	}

	return nil, errors.Errorf("unsupported csv format: %q", f)
}

// Open returns the csv.Reader matching the format's delimiter.
func (f Format) Open(file *os.File) *csv.Reader {
	if f == FormatMetaTrader {
		return NewSemicolonReader(file)
	}
	return csv.NewReader(file)
}

// ReadKLinesFromCSV reads all the .csv files in a given directory or a single file into a slice of KLines.
// Wraps a default CSVKLineReader with Binance decoder for convenience.
// For finer grained memory management use the base kline reader.
func ReadKLinesFromCSV(path string, symbol string, interval types.Interval) ([]types.KLine, error) {
	return ReadKLinesFromCSVWithFormat(path, symbol, interval, FormatBinance)
}

// ReadKLinesFromCSVWithFormat reads the files with the decoder of the given format.
// The bars are stamped with the symbol and interval and sorted by end time.
func ReadKLinesFromCSVWithFormat(path string, symbol string, interval types.Interval, format Format) ([]types.KLine, error) {
	maker, err := format.ReaderMaker()
	if err != nil {
		return nil, err
	}

	var klines []types.KLine

	err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(format.Open(file))
		newKlines, err := reader.ReadAll(interval.Duration())
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		klines = append(klines, newKlines...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range klines {
		klines[i].Symbol = symbol
		klines[i].Interval = interval
	}

	sort.SliceStable(klines, func(i, j int) bool {
		return klines[i].EndTime.Before(klines[j].EndTime)
	})

	return klines, nil
}
