package engine

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/streamta/pkg/config"
	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/types"
)

var log = logrus.WithField("component", "engine")

// ErrUnknownNode is returned when an input references an unregistered id.
var ErrUnknownNode = errors.New("unknown node")

// ErrDuplicateNode is returned when an id is registered twice.
var ErrDuplicateNode = errors.New("duplicate node")

// Engine keeps the named indicator streams of one symbol and interval and
// drives them from a single bar stream.
//
//go:generate callbackgen -type Engine
type Engine struct {
	Symbol   string
	Interval types.Interval

	kLines *indicator.KLineStream

	// caches
	prices map[string]*indicator.PriceStream
	nodes  map[string]indicator.Stream
	order  []string

	updateCallbacks []func(id string, s types.Sample)
	rejectCallbacks []func(id string, s types.Sample, status types.Status)
}

func New(symbol string, interval types.Interval) *Engine {
	return &Engine{
		Symbol:   symbol,
		Interval: interval,
		kLines:   indicator.KLines(symbol, interval),
		prices:   make(map[string]*indicator.PriceStream),
		nodes:    make(map[string]indicator.Stream),
	}
}

// FromGraph builds an engine with every node of the graph registered.
func FromGraph(graph *config.Graph) (*Engine, error) {
	e := New(graph.Symbol, graph.Interval)
	for _, node := range graph.Nodes {
		if err := e.Add(node); err != nil {
			return nil, errors.Wrapf(err, "indicator %s", node.ID)
		}
	}

	return e, nil
}

func (e *Engine) KLines() *indicator.KLineStream {
	return e.kLines
}

// Price returns the cached price stream of the given input name.
func (e *Engine) Price(name string) (*indicator.PriceStream, bool) {
	if s, ok := e.prices[name]; ok {
		return s, true
	}

	var s *indicator.PriceStream
	switch name {
	case config.InputOpen:
		s = indicator.OpenPrices(e.kLines)
	case config.InputHigh:
		s = indicator.HighPrices(e.kLines)
	case config.InputLow:
		s = indicator.LowPrices(e.kLines)
	case config.InputClose:
		s = indicator.ClosePrices(e.kLines)
	case config.InputTypical:
		s = indicator.TypicalPrices(e.kLines)
	case config.InputMedian:
		s = indicator.MedianPrices(e.kLines)
	case config.InputVolume:
		s = indicator.Volumes(e.kLines)
	default:
		return nil, false
	}

	e.prices[name] = s
	return s, true
}

// Stream resolves a price input or a registered node.
func (e *Engine) Stream(id string) (indicator.Stream, error) {
	if s, ok := e.nodes[id]; ok {
		return s, nil
	}

	if s, ok := e.Price(id); ok {
		return s, nil
	}

	return nil, errors.Wrapf(ErrUnknownNode, "%q", id)
}

// Register adds a stream under the id and forwards its updates and rejects
// to the engine callbacks.
func (e *Engine) Register(id string, s indicator.Stream) error {
	if _, exists := e.nodes[id]; exists {
		return errors.Wrapf(ErrDuplicateNode, "%q", id)
	}

	e.nodes[id] = s
	e.order = append(e.order, id)

	s.OnUpdate(func(v types.Sample) {
		e.EmitUpdate(id, v)
	})
	s.OnReject(func(v types.Sample, status types.Status) {
		e.EmitReject(id, v, status)
	})

	log.Debugf("registered %s as %s", s.Name(), id)
	return nil
}

// IDs returns the registered ids in registration order.
func (e *Engine) IDs() []string {
	return append([]string(nil), e.order...)
}

// Push feeds one bar; bars of other symbols or intervals are ignored.
func (e *Engine) Push(k types.KLine) bool {
	return e.kLines.Push(k)
}

// PushAll feeds the bars in order and returns how many were accepted.
func (e *Engine) PushAll(kLines []types.KLine) (n int) {
	for _, k := range kLines {
		if e.Push(k) {
			n++
		}
	}
	return n
}

// Reset returns every stream to its initial state.
func (e *Engine) Reset() {
	e.kLines.Reset()
	for _, s := range e.prices {
		s.Reset()
	}
	for _, id := range e.order {
		e.nodes[id].Reset()
	}
}

// Row is the state of one registered stream.
type Row struct {
	ID      string
	Name    string
	Current types.Sample
	Ready   bool
	Samples int
}

// Snapshot returns one row per registered stream in registration order.
func (e *Engine) Snapshot() []Row {
	rows := make([]Row, 0, len(e.order))
	for _, id := range e.order {
		s := e.nodes[id]
		rows = append(rows, Row{
			ID:      id,
			Name:    s.Name(),
			Current: s.Current(),
			Ready:   s.IsReady(),
			Samples: s.Samples(),
		})
	}
	return rows
}

// ReadyIDs returns the sorted ids of the streams that are ready.
func (e *Engine) ReadyIDs() (ids []string) {
	for id, s := range e.nodes {
		if s.IsReady() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
