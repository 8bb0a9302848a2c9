// Command scalaparse recognizes whether files match the grammar
// implemented by internal/parsing, reporting one line per file and
// exiting non-zero if any non-skipped file failed to parse.
package main

import (
	"os"

	"github.com/dwijnand/scala-parser/internal/driver"
)

func main() {
	os.Exit(driver.Execute())
}
