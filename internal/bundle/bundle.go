// Package bundle relaunches the process inside a generated .app bundle so
// that accessibility grants attach to a stable bundle identity.
package bundle

// Options describes the generated bundle
type Options struct {
	Enabled  bool
	Name     string
	BundleID string
}
