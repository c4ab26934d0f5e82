//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"
)

// localStorage writes to window.localStorage.
type localStorage struct{}

// SetItem stores value under key. Exceptions thrown by the browser, such
// as QuotaExceededError or a disabled storage, come back as errors.
func (localStorage) SetItem(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = fmt.Errorf("%s", jsErr.Get("message").String())
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return fmt.Errorf("localStorage is not available")
	}
	storage.Call("setItem", key, value)
	return nil
}
