//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifeca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifegui` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Use ./cmd/life -t for the terminal viewer.")
	os.Exit(2)
}
