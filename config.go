package viu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"viu/internal/clock"
)

// Options configures a Root. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// EventInterval is how often the event loop drains queued closures.
	EventInterval time.Duration `yaml:"event_interval"`

	// ResizePollInterval is how often the terminal size is sampled.
	ResizePollInterval time.Duration `yaml:"resize_poll_interval"`

	// ResizeQuietPeriod is how long the size must stay put before the
	// tree is laid out again.
	ResizeQuietPeriod time.Duration `yaml:"resize_quiet_period"`

	// QueueLimit caps closures waiting for the event loop; zero means
	// unbounded.
	QueueLimit int `yaml:"queue_limit"`

	AltScreen bool   `yaml:"alt_screen"`
	Title     string `yaml:"title,omitempty"`

	// Bindings overrides baseline keys: action name to key strings.
	Bindings map[string]KeyList `yaml:"bindings,omitempty"`

	Logger *slog.Logger `yaml:"-"`
	Clock  clock.Clock  `yaml:"-"`
}

// DefaultOptions returns the standard intervals with logging discarded.
func DefaultOptions() Options {
	return Options{
		EventInterval:      5 * time.Millisecond,
		ResizePollInterval: 20 * time.Millisecond,
		ResizeQuietPeriod:  100 * time.Millisecond,
		QueueLimit:         DefaultQueueLimit,
		AltScreen:          true,
		Logger:             slog.New(slog.DiscardHandler),
		Clock:              clock.Real(),
	}
}

// KeyList is one or more key strings. In YAML it is a scalar or a
// sequence.
type KeyList []string

func (k *KeyList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*k = KeyList{value.Value}
		return nil
	}
	var keys []string
	if err := value.Decode(&keys); err != nil {
		return err
	}
	*k = keys
	return nil
}

// LoadOptions reads options from a YAML file over the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("load options: %w", err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes YAML over the defaults. Unknown keys, bad durations
// and unparseable key strings are errors.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := checkDurations(data); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

var durationKeys = []string{"event_interval", "resize_poll_interval", "resize_quiet_period"}

// checkDurations parses string durations at the top level so a bad one is
// reported with its key. Other syntax errors are left to the decoder.
func checkDurations(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		if !slices.Contains(durationKeys, key.Value) || val.Kind != yaml.ScalarNode || val.ShortTag() != "!!str" {
			continue
		}
		if _, err := time.ParseDuration(val.Value); err != nil {
			return fmt.Errorf("line %d: %s: %w", val.Line, key.Value, err)
		}
	}
	return nil
}

// Validate checks intervals and key strings.
func (o Options) Validate() error {
	var errs []error
	for name, d := range map[string]time.Duration{
		"event_interval":       o.EventInterval,
		"resize_poll_interval": o.ResizePollInterval,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}
	if o.ResizeQuietPeriod < 0 {
		errs = append(errs, fmt.Errorf("resize_quiet_period must not be negative, got %v", o.ResizeQuietPeriod))
	}
	if o.QueueLimit < 0 {
		errs = append(errs, fmt.Errorf("queue_limit must not be negative, got %d", o.QueueLimit))
	}
	for action, keys := range o.Bindings {
		for _, k := range keys {
			if _, err := ParseKeyStroke(k); err != nil {
				errs = append(errs, fmt.Errorf("binding %q: %w", action, err))
			}
		}
	}
	return errors.Join(errs...)
}

// InstallBindings puts the configured bindings on m. Every stroke already
// bound to a configured action is removed first, so the file replaces the
// defaults for that action rather than adding to them.
func (o Options) InstallBindings(m InputMap) error {
	actions := make([]string, 0, len(o.Bindings))
	for a := range o.Bindings {
		actions = append(actions, a)
	}
	slices.Sort(actions)

	compiled := m.Compile()
	for _, action := range actions {
		for _, ks := range StrokesFor(compiled, action) {
			m.Delete(ks)
		}
		for _, k := range o.Bindings[action] {
			ks, err := ParseKeyStroke(k)
			if err != nil {
				return fmt.Errorf("binding %q: %w", action, err)
			}
			m.Put(ks, action)
		}
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) clock() clock.Clock {
	if o.Clock == nil {
		return clock.Real()
	}
	return o.Clock
}
