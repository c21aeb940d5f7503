//go:build !windows

package util

// IsRunFromGUI reports whether the process was started by double-clicking it
// in a file manager. Only Windows can tell; elsewhere it is always false.
func IsRunFromGUI() bool {
	return false
}
