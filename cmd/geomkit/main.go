// Command geomkit evaluates geometry query scripts and prints the results.
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
