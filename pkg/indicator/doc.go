/*
Package indicator is the streaming core of the technical analysis engine.

Every node implements Stream: it accepts one sample at a time, forward-only,
produces at most one output per input, and notifies its subscribers
synchronously when it produces a value. Indicators are built by wiring nodes:

	kLines := KLines("BTCUSDT", types.Interval1h)
	closePrices := ClosePrices(kLines)
	fastEMA, _ := EMAOf(closePrices, 12)
	slowEMA, _ := EMAOf(closePrices, 26)
	macd := Minus(fastEMA, slowEMA)
	signal, _ := EMAOf(macd, 9)
	histogram := Minus(macd, signal)

	kLines.Push(k) // drives the whole graph in subscription order
*/
package indicator
