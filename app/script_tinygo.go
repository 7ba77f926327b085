//go:build tinygo

package app

import "errors"

func (a *app) loadScript(path string) error {
	return errors.New("lua scripts are not available on the device: " + path)
}
