// Package blob wraps JavaScript Blob and File objects.
package blob

import (
	"errors"
	"syscall/js"
)

type Blob js.Value

var blobJS = js.Global().Get("Blob")

func New(b []byte, typ string) Blob {
	array := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(array, b)

	return Blob(blobJS.New([]interface{}{array}, map[string]interface{}{
		"type": typ,
	}))
}

// JS converts JavaScript Blob or File object to Blob.
func JS(j interface{}) (Blob, error) {
	jv, ok := j.(js.Value)
	if !ok {
		return Blob{}, errors.New("requires JavaScript object")
	}
	if !jv.InstanceOf(blobJS) {
		return Blob{}, errors.New("requires Blob object")
	}
	return Blob(jv), nil
}

func (blob Blob) JS() js.Value {
	return js.Value(blob)
}

// Name returns the file name, or empty string if the blob is not a File.
func (blob Blob) Name() string {
	name := js.Value(blob).Get("name")
	if name.Type() != js.TypeString {
		return ""
	}
	return name.String()
}

// Bytes reads the whole content of the blob.
// It must not be called from a JavaScript callback.
func (blob Blob) Bytes() ([]byte, error) {
	var b []byte
	chErr := make(chan error)
	js.Value(blob).Call("arrayBuffer").Call("then",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			array := js.Global().Get("Uint8Array").New(args[0])
			b = make([]byte, array.Get("byteLength").Int())
			js.CopyBytesToGo(b, array)
			chErr <- nil
			return nil
		}),
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chErr <- errors.New("failed to read blob")
			return nil
		}),
	)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return b, nil
}

// Download lets the browser save the blob as a file.
func (blob Blob) Download(name string) {
	url := js.Global().Get("URL")
	href := url.Call("createObjectURL", js.Value(blob))
	defer url.Call("revokeObjectURL", href)

	a := js.Global().Get("document").Call("createElement", "a")
	a.Set("href", href)
	a.Set("download", name)
	a.Call("click")
}
