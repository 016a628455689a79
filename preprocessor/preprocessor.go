// Package preprocessor rewrites host-language wrappers into bare,
// space-delimited token lists before the extractor ever sees them. Every
// PreProcessor is a byte-length-preserving transform: it may only substitute
// spaces, never insert or delete bytes, so span offsets computed against the
// transformed buffer stay valid against the original file.
package preprocessor

// PreProcessor neutralizes a host-language construct that would otherwise
// hide candidate tokens from the extractor.
type PreProcessor interface {
	Process(content []byte) []byte
}

// Registry looks up a PreProcessor by name, as configured per file extension.
type Registry struct {
	byName map[string]PreProcessor
}

// NewRegistry returns a registry pre-populated with the built-in processors.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]PreProcessor)}
	r.Register("ruby", Ruby{})
	return r
}

// Register adds or replaces the processor for a name.
func (r *Registry) Register(name string, p PreProcessor) {
	r.byName[name] = p
}

// Lookup returns the processor registered under name, if any.
func (r *Registry) Lookup(name string) (PreProcessor, bool) {
	p, ok := r.byName[name]
	return p, ok
}
