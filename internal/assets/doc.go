// Package assets provides the page styles and the trip header template used
// by the itinerary HTML page.
//
// Built-in assets (styles midnight and daylight, template header) are
// embedded in the binary. A custom asset directory may override any of them:
//
//	{dir}/styles/{name}.css
//	{dir}/templates/{name}.html
//
// Names are restricted to letters, digits, '-' and '_'. Files are read only
// when their resolved path, symlinks included, stays inside the directory.
package assets
