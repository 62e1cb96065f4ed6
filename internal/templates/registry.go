package templates

import (
	"fmt"
	"sync"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// DefaultID is the template used whenever the requested one is not registered
const DefaultID = "simple"

// Resolution records which template a request asked for and which one was used
type Resolution struct {
	Requested string `json:"requested"`
	Used      string `json:"used"`
	FellBack  bool   `json:"fell_back"`
}

// Registry manages available templates. List order is registration order.
type Registry struct {
	templates map[string]*Config
	order     []string
	defaultID string
	mutex     sync.RWMutex
}

// NewRegistry creates an empty registry that falls back to DefaultID
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]*Config),
		defaultID: DefaultID,
	}
}

// Register registers a template in the registry
func (r *Registry) Register(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.templates[cfg.ID()]; exists {
		return fmt.Errorf("template %s already registered", cfg.ID())
	}

	r.templates[cfg.ID()] = cfg
	r.order = append(r.order, cfg.ID())
	return nil
}

// Get retrieves a template by id
func (r *Registry) Get(id string) (*Config, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	cfg, exists := r.templates[id]
	if !exists {
		return nil, &UnknownTemplateError{ID: id}
	}
	return cfg, nil
}

// Exists checks if a template exists
func (r *Registry) Exists(id string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.templates[id]
	return exists
}

// List returns the metadata of every registered template in registration order
func (r *Registry) List() []types.TemplateInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]types.TemplateInfo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id].Info)
	}
	return out
}

// SetDefault changes the fallback template. The id must already be registered.
func (r *Registry) SetDefault(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.templates[id]; !exists {
		return &UnknownTemplateError{ID: id}
	}
	r.defaultID = id
	return nil
}

// DefaultID returns the fallback template id
func (r *Registry) DefaultID() string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.defaultID
}

// Resolve is Get under the registry contract name
func (r *Registry) Resolve(id string) (*Config, error) {
	return r.Get(id)
}

// ResolveOrDefault returns the requested template, or the default one when id
// is not registered. The returned Resolution says which happened. It only fails
// when the default itself is missing.
func (r *Registry) ResolveOrDefault(id string) (*Config, Resolution, error) {
	if cfg, err := r.Get(id); err == nil {
		return cfg, Resolution{Requested: id, Used: id}, nil
	}

	def := r.DefaultID()
	cfg, err := r.Get(def)
	if err != nil {
		return nil, Resolution{Requested: id}, fmt.Errorf("default template missing: %w", err)
	}
	return cfg, Resolution{Requested: id, Used: def, FellBack: true}, nil
}

// Builtin returns the built-in templates in display order
func Builtin() []*Config {
	return []*Config{
		simpleTemplate(),
		minimalTemplate(),
		modernTemplate(),
		professionalTemplate(),
		creativeTemplate(),
		frontendTemplate(),
		backendTemplate(),
		devopsTemplate(),
		aimlTemplate(),
		mobileTemplate(),
	}
}

// NewBuiltinRegistry returns a registry holding every built-in template
func NewBuiltinRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, cfg := range Builtin() {
		if err := r.Register(cfg); err != nil {
			return nil, fmt.Errorf("failed to register template %s: %w", cfg.ID(), err)
		}
	}
	return r, nil
}

// MustBuiltinRegistry is NewBuiltinRegistry for callers that treat a broken
// built-in table as a programming error
func MustBuiltinRegistry() *Registry {
	r, err := NewBuiltinRegistry()
	if err != nil {
		panic(err)
	}
	return r
}
