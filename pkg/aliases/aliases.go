// Package aliases maintains the table of style aliases: short tokens that
// expand to a full style spec when used as a markup tag body.
//
// A Registry is safe for concurrent use. Specs are resolved to concrete
// styles at registration time, so a registration can never retroactively
// change the look of a message that was already rendered.
package aliases

import (
	_ "embed"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/prism/pkg/errors"
	"github.com/arthur-debert/prism/pkg/styles"
)

//go:embed presets.yaml
var embeddedPresets []byte

// Registry maps alias tokens to resolved styles. Registrations are
// last-write-wins and there is no removal.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]styles.Style
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]styles.Style)}
}

// Register parses spec with the markup tag grammar and stores the
// resolved style under token, overwriting any prior entry. A spec with an
// unknown name or more than one color fails with INVALID_TOKEN and leaves
// any prior registration intact.
func (r *Registry) Register(token, spec string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New(errors.ErrInvalidToken, "alias token must not be empty")
	}
	style, err := styles.ParseSpec(spec)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidToken,
			"invalid style spec for alias %q", token)
	}

	r.mu.Lock()
	r.entries[token] = style
	r.mu.Unlock()
	return nil
}

// Resolve returns the currently registered style for token.
func (r *Registry) Resolve(token string) (styles.Style, bool) {
	r.mu.RLock()
	style, ok := r.entries[token]
	r.mu.RUnlock()
	return style, ok
}

// Tokens returns the registered alias tokens in sorted order.
func (r *Registry) Tokens() []string {
	r.mu.RLock()
	tokens := make([]string, 0, len(r.entries))
	for token := range r.entries {
		tokens = append(tokens, token)
	}
	r.mu.RUnlock()

	sort.Strings(tokens)
	return tokens
}

// LoadPresets registers every entry of a YAML token-to-spec mapping.
func (r *Registry) LoadPresets(data []byte) error {
	var presets map[string]string
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to parse alias presets")
	}
	for token, spec := range presets {
		if err := r.Register(token, spec); err != nil {
			return err
		}
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it with the
// embedded presets on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		// Presets ship with the binary; a failure here leaves an empty
		// registry rather than taking the host application down.
		_ = defaultRegistry.LoadPresets(embeddedPresets)
	})
	return defaultRegistry
}

// Register registers an alias on the process-wide registry.
func Register(token, spec string) error {
	return Default().Register(token, spec)
}

// Resolve looks up an alias on the process-wide registry.
func Resolve(token string) (styles.Style, bool) {
	return Default().Resolve(token)
}
