package classify

import (
	"sort"

	"github.com/pkg/errors"
)

// Params are the fixed hyper-parameters a model is constructed with.
type Params map[string]float64

// Get returns a parameter or a default.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// Factory constructs an unfitted classifier.
type Factory func(params Params) Classifier

// Spec is a registered model: its constructor and hyper-parameters.
type Spec struct {
	Name   string
	New    Factory
	Params Params
}

// Registry maps model identifiers to their specs.
type Registry map[string]Spec

// Register adds a model, replacing any model of the same name.
func (r Registry) Register(name string, factory Factory, params Params) {
	r[name] = Spec{Name: name, New: factory, Params: params}
}

// New constructs a fresh classifier for a registered model.
func (r Registry) New(name string) (Classifier, error) {
	s, ok := r[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownModel, name)
	}
	return s.New(s.Params), nil
}

// Names returns the registered identifiers in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultRegistry creates a registry with the baseline models.
func NewDefaultRegistry() Registry {
	r := make(Registry)
	r.Register("Majority", func(Params) Classifier {
		return &Majority{}
	}, Params{})
	r.Register("NearestCentroid", func(p Params) Classifier {
		return &NearestCentroid{Norm: p.Get("norm", 2)}
	}, Params{"norm": 2})
	return r
}
