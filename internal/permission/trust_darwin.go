//go:build darwin

package permission

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

bool checkAccessibilityPermissions() {
    return AXIsProcessTrusted();
}
*/
import "C"

import (
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// AXChecker queries AXIsProcessTrusted without triggering the system prompt
type AXChecker struct{}

var _ domain.TrustChecker = AXChecker{}

func (AXChecker) IsTrusted() (bool, error) {
	return bool(C.checkAccessibilityPermissions()), nil
}
