package assets

import "errors"

// Resolver serves assets from a custom directory when one is configured,
// and from the built-in set otherwise. A custom directory only needs the
// files it overrides: a missing style or template falls through to the
// built-in one, any other error is returned as is.
type Resolver struct {
	custom   Loader // nil without a custom directory
	embedded Loader
}

// NewResolver creates a Resolver. An empty dir uses built-in assets only.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if dir == "" {
		return r, nil
	}

	fsLoader, err := NewFilesystemLoader(dir)
	if err != nil {
		return nil, err
	}
	r.custom = fsLoader
	return r, nil
}

func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.load(func(l Loader) (string, error) { return l.LoadStyle(name) })
}

func (r *Resolver) LoadTemplate(name string) (string, error) {
	return r.load(func(l Loader) (string, error) { return l.LoadTemplate(name) })
}

// HasCustomDir reports whether a custom directory is configured.
func (r *Resolver) HasCustomDir() bool {
	return r.custom != nil
}

func (r *Resolver) load(get func(Loader) (string, error)) (string, error) {
	if r.custom != nil {
		content, err := get(r.custom)
		if err == nil || !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return content, err
		}
	}
	return get(r.embedded)
}

var _ Loader = (*Resolver)(nil)
