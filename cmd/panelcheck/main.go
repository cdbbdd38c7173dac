// Command panelcheck runs the panel layout regression suite against one or
// more layout engines.
//
// Usage:
//
//	panelcheck run [scenario...]     Run scenarios (all by default)
//	panelcheck list                  List scenarios by kind
//	panelcheck sweep <grid>          Sweep a grid through a range of widths
//	panelcheck version               Print version information
package main

import (
	"io"
	"os"
)

const version = "0.1.0"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return 1
	}
	return 0
}
