//go:build !darwin

package permission

import (
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// AXChecker is a stub for non-macOS platforms
type AXChecker struct{}

var _ domain.TrustChecker = AXChecker{}

func (AXChecker) IsTrusted() (bool, error) {
	return false, domain.ErrUnsupported
}
