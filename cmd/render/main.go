// Command render writes the dashboard once, as a standalone HTML file or as
// terminal text.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
