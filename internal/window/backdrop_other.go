//go:build !windows

package window

import "fmt"

func setNativeMica(uintptr) error {
	return fmt.Errorf("apply mica: %w", ErrBackdropUnsupported)
}
