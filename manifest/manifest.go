// Package manifest describes a form declaratively in YAML or JSON and turns
// the description into goform.Options.
package manifest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/reoring/goform"
	"github.com/reoring/goform/internal/pathtree"
	"github.com/reoring/goform/rules"
)

// CodeInvalidTag marks a validations entry whose tag does not compile.
const CodeInvalidTag = "invalid_tag"

// Manifest is the on-disk form description. YAML documents use the same
// keys as JSON ones.
type Manifest struct {
	FormID        string         `json:"form_id"`
	Action        string         `json:"action,omitempty"`
	Language      string         `json:"language,omitempty"`
	InitialValues map[string]any `json:"initial_values"`
	// Validations maps paths or "_item" patterns to validator tags, e.g.
	// "required,min=3".
	Validations map[string]string `json:"validations,omitempty"`
	// Messages overrides the message of a failing validation by key.
	Messages         map[string]string `json:"messages,omitempty"`
	Watch            []string          `json:"watch,omitempty"`
	ValidateOnChange *bool             `json:"validate_on_change,omitempty"`
	ValidateOnBlur   *bool             `json:"validate_on_blur,omitempty"`
	Debug            bool              `json:"debug,omitempty"`
}

// Load decodes a manifest. YAML is normalised into the JSON value model
// first, so numbers always arrive as float64.
func Load(data []byte, format goform.Format) (*Manifest, error) {
	raw := data
	if format == goform.FormatYAML {
		tree, err := goform.ValuesFromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		if raw, err = json.Marshal(tree); err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
	}
	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", format, err)
	}
	if m.InitialValues == nil {
		m.InitialValues = map[string]any{}
	}
	return &m, nil
}

// LoadFile reads and decodes path, picking the format from its extension.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return Load(data, goform.FormatOf(path))
}

// Validate checks every validator tag and message key.
func (m *Manifest) Validate() error {
	var iss goform.Issues
	for _, key := range pathtree.SortedKeys(m.Validations) {
		if _, err := rules.CompileTag(m.Validations[key]); err != nil {
			iss = goform.AppendIssues(iss, goform.Issue{Path: key, Code: CodeInvalidTag, Message: err.Error()})
		}
	}
	for _, key := range pathtree.SortedKeys(m.Messages) {
		if _, ok := m.Validations[key]; !ok {
			iss = goform.AppendIssues(iss, goform.Issue{Path: key, Code: goform.CodeInvalidPath, Message: "message without validation"})
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Options builds form options. Watched paths are logged at info level on
// log, which may be nil.
func (m *Manifest) Options(log *zap.Logger) (goform.Options, error) {
	if err := m.Validate(); err != nil {
		return goform.Options{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	validations := make(map[string]goform.Validator, len(m.Validations))
	for key, tag := range m.Validations {
		rule, _ := rules.CompileTag(tag)
		if msg, ok := m.Messages[key]; ok {
			rule = rules.Message(rule, msg)
		}
		validations[key] = rule
	}
	watch := make(map[string]goform.WatchFunc, len(m.Watch))
	for _, p := range m.Watch {
		key := p
		watch[key] = func(v any, errMsg string, touched bool) {
			log.Info("watched field changed",
				zap.String("watch", key),
				zap.Any("value", v),
				zap.String("error", errMsg),
				zap.Bool("touched", touched))
		}
	}
	return goform.Options{
		FormID:           m.FormID,
		InitialValues:    m.InitialValues,
		Validations:      validations,
		ValidateOnChange: m.ValidateOnChange,
		ValidateOnBlur:   m.ValidateOnBlur,
		Watch:            watch,
		Debug:            m.Debug,
		Logger:           log,
	}, nil
}
