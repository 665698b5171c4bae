package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/streamta/pkg/types"
)

// Price inputs that every graph can reference without declaring them.
const (
	InputOpen    = "open"
	InputHigh    = "high"
	InputLow     = "low"
	InputClose   = "close"
	InputTypical = "typical"
	InputMedian  = "median"
	InputVolume  = "volume"
)

var PriceInputs = []string{InputOpen, InputHigh, InputLow, InputClose, InputTypical, InputMedian, InputVolume}

// NodeType names an indicator constructor.
type NodeType string

const (
	NodeSMA       NodeType = "sma"
	NodeEMA       NodeType = "ema"
	NodeSum       NodeType = "sum"
	NodeMaximum   NodeType = "max"
	NodeMinimum   NodeType = "min"
	NodeDelay     NodeType = "delay"
	NodeMomentum  NodeType = "momentum"
	NodeROC       NodeType = "roc"
	NodeLogReturn NodeType = "logreturn"
	NodeRSI       NodeType = "rsi"
	NodeLinReg    NodeType = "linreg"
	NodeWeighted  NodeType = "weighted"
	NodePlus      NodeType = "plus"
	NodeMinus     NodeType = "minus"
	NodeTimes     NodeType = "times"
	NodeOver      NodeType = "over"
	NodeMACD      NodeType = "macd"
	NodeAroon     NodeType = "aroon"
	NodeAwesome   NodeType = "ao"
)

type nodeShape struct {
	// number of inputs; binary operators also accept one input plus a constant
	inputs      int
	needsWindow bool
}

var nodeShapes = map[NodeType]nodeShape{
	NodeSMA:       {inputs: 1, needsWindow: true},
	NodeEMA:       {inputs: 1, needsWindow: true},
	NodeSum:       {inputs: 1, needsWindow: true},
	NodeMaximum:   {inputs: 1, needsWindow: true},
	NodeMinimum:   {inputs: 1, needsWindow: true},
	NodeDelay:     {inputs: 1, needsWindow: true},
	NodeMomentum:  {inputs: 1, needsWindow: true},
	NodeROC:       {inputs: 1, needsWindow: true},
	NodeLogReturn: {inputs: 1, needsWindow: true},
	NodeRSI:       {inputs: 1, needsWindow: true},
	NodeLinReg:    {inputs: 1, needsWindow: true},
	NodeWeighted:  {inputs: 2, needsWindow: true},
	NodePlus:      {inputs: 2},
	NodeMinus:     {inputs: 2},
	NodeTimes:     {inputs: 2},
	NodeOver:      {inputs: 2},
	NodeMACD:      {inputs: 1},
	NodeAroon:     {inputs: 2, needsWindow: true},
	NodeAwesome:   {inputs: 1},
}

var nodeLines = map[NodeType][]string{
	NodeMACD:  {"histogram", "signal"},
	NodeAroon: {"down", "up"},
}

// Lines returns the sub-streams a node of this type exposes besides its main
// output. They are referenced as "<id>.<line>".
func (t NodeType) Lines() []string {
	return nodeLines[t]
}

// LineID is the id of the sub-stream line of the node id.
func LineID(id, line string) string {
	return id + "." + line
}

// IsBinaryOperator reports whether the node combines two inputs arithmetically.
func (t NodeType) IsBinaryOperator() bool {
	switch t {
	case NodePlus, NodeMinus, NodeTimes, NodeOver:
		return true
	}
	return false
}

// Node declares one indicator of the graph.
type Node struct {
	ID     string      `json:"id" yaml:"id"`
	Type   NodeType    `json:"type" yaml:"type"`
	Inputs StringSlice `json:"input" yaml:"input"`

	Window int `json:"window,omitempty" yaml:"window,omitempty"`

	// Value is the scalar operand of a binary operator with a single input.
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`

	// MACD windows
	Short  int `json:"short,omitempty" yaml:"short,omitempty"`
	Long   int `json:"long,omitempty" yaml:"long,omitempty"`
	Signal int `json:"signal,omitempty" yaml:"signal,omitempty"`
}

// Source describes where the bars come from.
type Source struct {
	Path   string `json:"path" yaml:"path"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Graph is the top-level document of an indicator graph file.
type Graph struct {
	Symbol   string         `json:"symbol" yaml:"symbol"`
	Interval types.Interval `json:"interval" yaml:"interval"`
	Source   Source         `json:"source" yaml:"source"`
	Nodes    []Node         `json:"indicators" yaml:"indicators"`
}

// Load reads and validates a graph file.
func Load(configFile string) (*Graph, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	return Parse(content)
}

// Parse decodes and validates a YAML graph document.
func Parse(content []byte) (*Graph, error) {
	var graph Graph
	if err := yaml.Unmarshal(content, &graph); err != nil {
		return nil, errors.Wrap(err, "decode graph")
	}

	if graph.Interval == "" {
		graph.Interval = types.Interval1h
	}

	if err := graph.Validate(); err != nil {
		return nil, err
	}

	return &graph, nil
}

// Validate checks every node and returns all the problems found.
// Inputs must reference a price input, a node declared earlier or one of
// its lines.
func (g *Graph) Validate() (err error) {
	if _, ok := types.SupportedIntervals[g.Interval]; !ok {
		err = multierr.Append(err, errors.Errorf("unsupported interval %q", g.Interval))
	}

	declared := make(map[string]bool)
	for _, in := range PriceInputs {
		declared[in] = true
	}

	for i, node := range g.Nodes {
		err = multierr.Append(err, node.validate(i, declared))
		if node.ID != "" {
			declared[node.ID] = true
			for _, line := range node.Type.Lines() {
				declared[LineID(node.ID, line)] = true
			}
		}
	}

	return err
}

func (n Node) validate(index int, declared map[string]bool) (err error) {
	label := n.ID
	if label == "" {
		label = fmt.Sprintf("#%d", index)
		err = multierr.Append(err, errors.Errorf("indicator %s: missing id", label))
	} else if declared[n.ID] {
		err = multierr.Append(err, errors.Errorf("indicator %s: duplicate id", label))
	}

	shape, ok := nodeShapes[n.Type]
	if !ok {
		return multierr.Append(err, errors.Errorf("indicator %s: unknown type %q", label, n.Type))
	}

	want := shape.inputs
	if n.Type.IsBinaryOperator() && n.Value != nil {
		want = 1
	}

	if len(n.Inputs) != want {
		err = multierr.Append(err, errors.Errorf("indicator %s: %s takes %d input(s), given %d", label, n.Type, want, len(n.Inputs)))
	}

	for _, in := range n.Inputs {
		if !declared[in] {
			err = multierr.Append(err, errors.Errorf("indicator %s: undefined input %q", label, in))
		}
	}

	if shape.needsWindow && n.Window < 1 {
		err = multierr.Append(err, errors.Errorf("indicator %s: window must be at least 1, given %d", label, n.Window))
	}

	if n.Type == NodeMACD && (n.Short < 1 || n.Long <= n.Short || n.Signal < 1) {
		err = multierr.Append(err, errors.Errorf("indicator %s: invalid macd windows %d/%d/%d", label, n.Short, n.Long, n.Signal))
	}

	return err
}
