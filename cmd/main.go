package main

import (
	"os"

	"logreport/internal/cli"
)

// @title           Log Report API
// @version         1.0
// @description     Counts log entries per level and lists the entries of one level.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         reports
// @tag.description  Log level reports

func main() {
	os.Exit(cli.Execute())
}
