// Command lvsearch runs the search engine on problems described in a YAML file.
//
//	lvsearch route  --config problems.yaml --algorithm astar
//	lvsearch peak   --config problems.yaml --algorithm greedy
//	lvsearch vacuum --config problems.yaml --metrics
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvsearch:", err)
		os.Exit(1)
	}
}
