// mkicon writes the application icon for packaging.
// Usage: go run ./cmd/mkicon <output.png|output.ico> [size]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Mavwarf/onenote/internal/icon"
	"github.com/Mavwarf/onenote/internal/paths"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mkicon <output.png|output.ico> [size]")
		os.Exit(1)
	}
	size := 256
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 16 || n > 1024 {
			fmt.Fprintf(os.Stderr, "mkicon: invalid size %q\n", os.Args[2])
			os.Exit(1)
		}
		size = n
	}
	if err := write(os.Args[1], size); err != nil {
		fmt.Fprintf(os.Stderr, "mkicon: %v\n", err)
		os.Exit(1)
	}
}

func write(out string, size int) error {
	data, err := icon.PNG(size)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(out), ".ico") {
		data = icon.ICO(data, size)
	}
	return paths.AtomicWrite(out, data)
}
