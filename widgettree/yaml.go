package widgettree

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// Spec is the serializable description of a widget and its subtree.
type Spec struct {
	Type     string   `yaml:"type"`
	Classes  []string `yaml:"classes,omitempty"`
	States   []string `yaml:"states,omitempty"`
	Children []Spec   `yaml:"children,omitempty"`
}

// Build creates the widget tree described by spec.
func (spec Spec) Build() (*Widget, error) {
	if spec.Type == "" {
		return nil, fmt.Errorf("widget without type")
	}
	w := New(spec.Type, spec.Classes...)
	for _, s := range spec.States {
		w.SetState(s, true)
	}
	for i, chspec := range spec.Children {
		ch, err := chspec.Build()
		if err != nil {
			return nil, fmt.Errorf("%s/%d: %w", spec.Type, i, err)
		}
		w.Add(ch)
	}
	return w, nil
}

// SpecOf describes an existing widget tree.
func SpecOf(w *Widget) Spec {
	spec := Spec{Type: w.TypeName(), Classes: w.Classes(), States: w.ActiveStates()}
	for _, ch := range w.Children() {
		spec.Children = append(spec.Children, SpecOf(ch))
	}
	return spec
}

// ReadYAML reads a widget tree from YAML.
func ReadYAML(r io.Reader) (*Widget, error) {
	var spec Spec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("unable to decode widget tree: %w", err)
	}
	return spec.Build()
}

// WriteYAML writes the widget tree rooted at w as YAML.
func WriteYAML(w io.Writer, root *Widget) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(SpecOf(root)); err != nil {
		return err
	}
	return enc.Close()
}
