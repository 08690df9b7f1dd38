// Package process cleans up headless browser process trees left behind by
// the PDF renderer.
package process
