package csvsource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/types"
)

func TestReadKLinesFromCSV(t *testing.T) {
	expectedEndTime := time.Unix(1609459200, 0).Add(time.Hour)

	prices, err := ReadKLinesFromCSV("./testdata/BTCUSDT-1h.csv", "BTCUSDT", types.Interval1h)
	require.NoError(t, err)
	assert.Len(t, prices, 48)
	assert.Equal(t, int64(1609459200), prices[0].StartTime.Unix(), "StartTime")
	assert.Equal(t, expectedEndTime.Unix(), prices[0].EndTime.Unix(), "EndTime")
	assert.Equal(t, 100.0, prices[0].Open, "Open")
	assert.Equal(t, 101.5, prices[0].High, "High")
	assert.Equal(t, 99.5, prices[0].Low, "Low")
	assert.Equal(t, 101.0, prices[0].Close, "Close")
	assert.Equal(t, 25.5, prices[0].Volume, "Volume")
	assert.Equal(t, "BTCUSDT", prices[0].Symbol)
	assert.Equal(t, types.Interval1h, prices[47].Interval)

	for i := 1; i < len(prices); i++ {
		assert.False(t, prices[i].EndTime.Before(prices[i-1].EndTime))
	}
}

func TestReadKLinesFromCSV_Directory(t *testing.T) {
	prices, err := ReadKLinesFromCSV("./testdata", "BTCUSDT", types.Interval1h)
	require.NoError(t, err)
	assert.Len(t, prices, 48)
}

func TestFormat_ReaderMaker(t *testing.T) {
	_, err := Format("excel").ReaderMaker()
	assert.Error(t, err)

	maker, err := FormatMetaTrader.ReaderMaker()
	assert.NoError(t, err)
	assert.NotNil(t, maker)
}
