// Command fresco detects, decodes and renders images with the fresco library.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/fresco/cmd/fresco/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
