package assets

import "errors"

// Built-in asset names.
const (
	// DefaultStyleName is the style used when none is configured.
	DefaultStyleName = "midnight"

	// HeaderTemplateName is the trip header card template.
	HeaderTemplateName = "header"
)

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names that could leave the styles or
	// templates directory.
	ErrInvalidAssetName = errors.New("invalid asset name")

	ErrInvalidBasePath = errors.New("invalid asset directory")
	ErrAssetRead       = errors.New("failed to read asset")
	ErrPathTraversal   = errors.New("asset path escapes asset directory")
)

// Loader provides the page styles and the header template. Names carry no
// extension. Missing assets report ErrStyleNotFound or ErrTemplateNotFound,
// unsafe names ErrInvalidAssetName.
type Loader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// defaultLoader serves the built-in assets.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in style.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a built-in template.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
