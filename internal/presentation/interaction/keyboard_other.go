//go:build unix && !darwin && !linux

package interaction

import "errors"

var errRawModeUnsupported = errors.New("raw keyboard mode is not supported on this platform")

func (kr *KeyboardReader) enableRawMode() error {
	return errRawModeUnsupported
}

func (kr *KeyboardReader) disableRawMode() error {
	return nil
}
