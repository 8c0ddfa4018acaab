// logdelta - elapsed time between two trace log lines
//
// logdelta finds a "from" line and a "to" line in a log file and prints
// the time between their timestamps.
package main

import (
	"os"

	"github.com/ccollicutt/logdelta/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
