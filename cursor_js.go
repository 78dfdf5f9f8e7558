package main

import (
	"syscall/js"
)

type cursor string

const (
	cursorAuto cursor = "auto"
	cursorMove cursor = "move"
	cursorWait cursor = "wait"
)

func setCursor(canvas js.Value, c cursor) {
	canvas.Get("style").Set("cursor", string(c))
}
