package main

import (
	"fmt"
	"syscall/js"

	"github.com/seqsense/pointcloud-playground/blob"
)

// fetchGet downloads the file at path relative to the page.
func fetchGet(path string) ([]byte, error) {
	var b blob.Blob
	var errored bool
	chErr := make(chan error)
	js.Global().Call("fetch", path).Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if !args[0].Get("ok").Bool() {
				chErr <- fmt.Errorf("failed to fetch %s: %s", path, args[0].Get("statusText").String())
				errored = true
				return nil
			}
			return args[0].Call("blob")
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chErr <- fmt.Errorf("failed to fetch %s", path)
			errored = true
			return nil
		}),
	).Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if errored {
				return nil
			}
			b = blob.Blob(args[0])
			chErr <- nil
			return nil
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chErr <- fmt.Errorf("failed to receive %s", path)
			return nil
		}),
	)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return b.Bytes()
}
