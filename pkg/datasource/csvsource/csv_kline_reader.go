package csvsource

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/c9s/streamta/pkg/types"
)

var _ KLineReader = (*CSVKLineReader)(nil)

// CSVRecordReader is the subset of *csv.Reader the kline reader consumes.
type CSVRecordReader interface {
	Read() ([]string, error)
}

// CSVKLineReader is a KLineReader that reads from a CSV file.
type CSVKLineReader struct {
	csv     CSVRecordReader
	decoder CSVKLineDecoder
}

// MakeCSVKLineReader is a factory method type that creates a new CSVKLineReader.
type MakeCSVKLineReader func(csv CSVRecordReader) *CSVKLineReader

// NewCSVKLineReaderWithDecoder creates a new CSVKLineReader with the given decoder.
func NewCSVKLineReaderWithDecoder(csv CSVRecordReader, decoder CSVKLineDecoder) *CSVKLineReader {
	return &CSVKLineReader{
		csv:     csv,
		decoder: decoder,
	}
}

// NewSemicolonReader returns a csv.Reader for MetaTrader style exports.
func NewSemicolonReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	return reader
}

// Read reads the next KLine from the underlying CSV data.
func (r *CSVKLineReader) Read(interval time.Duration) (types.KLine, error) {
	var k types.KLine

	rec, err := r.csv.Read()
	if err != nil {
		return k, err
	}

	return r.decoder(rec, interval)
}

// ReadAll reads all the KLines from the underlying CSV data.
func (r *CSVKLineReader) ReadAll(interval time.Duration) ([]types.KLine, error) {
	var ks []types.KLine
	for {
		k, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}

	return ks, nil
}
