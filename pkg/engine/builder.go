package engine

import (
	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/config"
	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/indicator/momentum"
	"github.com/c9s/streamta/pkg/indicator/trend"
)

type windowConstructor func(source indicator.Stream, window int) (indicator.Stream, error)

func lift[T indicator.Stream](f func(source indicator.Stream, window int) (T, error)) windowConstructor {
	return func(source indicator.Stream, window int) (indicator.Stream, error) {
		s, err := f(source, window)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

var windowConstructors = map[config.NodeType]windowConstructor{
	config.NodeSMA:       lift(indicator.SMAOf),
	config.NodeEMA:       lift(indicator.EMAOf),
	config.NodeSum:       lift(indicator.SumOf),
	config.NodeMaximum:   lift(indicator.MaximumOf),
	config.NodeMinimum:   lift(indicator.MinimumOf),
	config.NodeDelay:     lift(indicator.DelayOf),
	config.NodeMomentum:  lift(momentum.Momentum),
	config.NodeROC:       lift(momentum.RateOfChange),
	config.NodeLogReturn: lift(momentum.LogReturn),
	config.NodeRSI:       lift(momentum.RSI),
	config.NodeLinReg:    lift(trend.LinRegSlope),
}

var binaryOperators = map[config.NodeType]func(left, right indicator.Stream) *indicator.CompositeStream{
	config.NodePlus:  indicator.Plus,
	config.NodeMinus: indicator.Minus,
	config.NodeTimes: indicator.Times,
	config.NodeOver:  indicator.Over,
}

// Add builds the node from its declaration and registers it. Multi-line
// indicators also register their sub-streams as "<id>.<line>".
func (e *Engine) Add(node config.Node) error {
	inputs := make([]indicator.Stream, len(node.Inputs))
	for i, id := range node.Inputs {
		s, err := e.Stream(id)
		if err != nil {
			return err
		}
		inputs[i] = s
	}

	if construct, ok := windowConstructors[node.Type]; ok {
		if len(inputs) != 1 {
			return errors.Errorf("%s takes one input, given %d", node.Type, len(inputs))
		}

		s, err := construct(inputs[0], node.Window)
		if err != nil {
			return err
		}
		return e.Register(node.ID, s)
	}

	if op, ok := binaryOperators[node.Type]; ok {
		switch {
		case len(inputs) == 2:
			return e.Register(node.ID, op(inputs[0], inputs[1]))
		case len(inputs) == 1 && node.Value != nil:
			return e.Register(node.ID, op(inputs[0], indicator.Constant(*node.Value)))
		}
		return errors.Errorf("%s takes two inputs or one input with a value", node.Type)
	}

	switch node.Type {
	case config.NodeWeighted:
		if len(inputs) != 2 {
			return errors.Errorf("%s takes two inputs, given %d", node.Type, len(inputs))
		}

		s, err := indicator.WeightedBy(inputs[0], inputs[1], node.Window)
		if err != nil {
			return err
		}
		return e.Register(node.ID, s)

	case config.NodeMACD:
		if len(inputs) != 1 {
			return errors.Errorf("%s takes one input, given %d", node.Type, len(inputs))
		}

		macd, err := trend.MACD(inputs[0], node.Short, node.Long, node.Signal)
		if err != nil {
			return err
		}
		return e.registerAll(node, macd, map[string]indicator.Stream{
			"signal":    macd.Signal,
			"histogram": macd.Histogram,
		})

	case config.NodeAroon:
		if len(inputs) != 2 {
			return errors.Errorf("%s takes high and low inputs, given %d", node.Type, len(inputs))
		}

		aroon, err := trend.Aroon(inputs[0], inputs[1], node.Window)
		if err != nil {
			return err
		}
		return e.registerAll(node, aroon, map[string]indicator.Stream{
			"up":   aroon.Up,
			"down": aroon.Down,
		})

	case config.NodeAwesome:
		if len(inputs) != 1 {
			return errors.Errorf("%s takes a median price input, given %d", node.Type, len(inputs))
		}

		ao, err := momentum.AwesomeOscillator(inputs[0])
		if err != nil {
			return err
		}
		return e.Register(node.ID, ao)
	}

	return errors.Errorf("unknown indicator type %q", node.Type)
}

// registerAll registers the root stream under the node id and each line
// declared for the node type under its line id.
func (e *Engine) registerAll(node config.Node, root indicator.Stream, lines map[string]indicator.Stream) error {
	if err := e.Register(node.ID, root); err != nil {
		return err
	}

	for _, line := range node.Type.Lines() {
		s, ok := lines[line]
		if !ok {
			return errors.Errorf("%s does not provide line %q", node.Type, line)
		}

		if err := e.Register(config.LineID(node.ID, line), s); err != nil {
			return err
		}
	}

	return nil
}
