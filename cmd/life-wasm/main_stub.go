//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The browser bridge only builds for the js/wasm target.")
	fmt.Fprintln(os.Stderr, "Build with `GOOS=js GOARCH=wasm go build ./cmd/life-wasm`.")
	os.Exit(2)
}
