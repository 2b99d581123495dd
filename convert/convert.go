package convert

import (
	"encoding/json"

	"github.com/katalvlaran/cyberank/engine"
	"github.com/katalvlaran/cyberank/graph"
)

// specWire is the JSON wire shape of a graph.Spec: the raw CSR dataset
// before validation, field-for-field.
type specWire struct {
	Stakes    []uint64 `json:"stakes"`
	NumNodes  int      `json:"num_nodes"`
	NumEdges  int      `json:"num_edges"`
	OutStart  []uint64 `json:"out_start"`
	OutCount  []uint32 `json:"out_count"`
	OutTarget []uint64 `json:"out_target"`
	OutAuthor []uint64 `json:"out_author"`
	InStart   []uint64 `json:"in_start"`
	InCount   []uint32 `json:"in_count"`
	InSource  []uint64 `json:"in_source"`
	InAuthor  []uint64 `json:"in_author"`
}

// EncodeSpec marshals a graph.Spec to its JSON wire form.
func EncodeSpec(spec *graph.Spec) ([]byte, error) {
	if spec == nil {
		return nil, ErrNilDataset
	}
	return json.Marshal(specFromGraph(spec))
}

// DecodeSpec unmarshals a graph.Spec from its JSON wire form. The
// result is not validated; pass it to graph.NewDataset for that.
func DecodeSpec(data []byte) (*graph.Spec, error) {
	var w specWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, ErrInvalidJSON
	}
	return &graph.Spec{
		Stakes:    w.Stakes,
		NumNodes:  w.NumNodes,
		NumEdges:  w.NumEdges,
		OutStart:  w.OutStart,
		OutCount:  w.OutCount,
		OutTarget: w.OutTarget,
		OutAuthor: w.OutAuthor,
		InStart:   w.InStart,
		InCount:   w.InCount,
		InSource:  w.InSource,
		InAuthor:  w.InAuthor,
	}, nil
}

func specFromGraph(spec *graph.Spec) specWire {
	return specWire{
		Stakes:    spec.Stakes,
		NumNodes:  spec.NumNodes,
		NumEdges:  spec.NumEdges,
		OutStart:  spec.OutStart,
		OutCount:  spec.OutCount,
		OutTarget: spec.OutTarget,
		OutAuthor: spec.OutAuthor,
		InStart:   spec.InStart,
		InCount:   spec.InCount,
		InSource:  spec.InSource,
		InAuthor:  spec.InAuthor,
	}
}

// resultWire is the JSON wire shape of engine.Result.
type resultWire struct {
	Rank       []float64 `json:"rank"`
	Entropy    []float64 `json:"entropy"`
	Light      []float64 `json:"light"`
	Karma      []float64 `json:"karma"`
	Iterations int       `json:"iterations"`
}

// EncodeResult marshals an engine.Result to its JSON wire form.
func EncodeResult(r *engine.Result) ([]byte, error) {
	if r == nil {
		return nil, ErrNilDataset
	}
	return json.Marshal(resultWire{
		Rank:       r.Rank,
		Entropy:    r.Entropy,
		Light:      r.Light,
		Karma:      r.Karma,
		Iterations: r.Iterations,
	})
}

// DecodeResult unmarshals an engine.Result from its JSON wire form.
func DecodeResult(data []byte) (*engine.Result, error) {
	var w resultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, ErrInvalidJSON
	}
	return &engine.Result{
		Rank:       w.Rank,
		Entropy:    w.Entropy,
		Light:      w.Light,
		Karma:      w.Karma,
		Iterations: w.Iterations,
	}, nil
}
