// Command transport solves balanced transportation problems from YAML files.
//
//	transport balance problem.yaml
//	transport solve problem.yaml --method vogel --steps
//	transport optimize problem.yaml --output json
//	transport compare problem.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
