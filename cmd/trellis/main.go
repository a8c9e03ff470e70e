// Command trellis renders a trellis project to PNG or dumps its layout.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
