package main

import (
	"os"

	"github.com/phpenv-dev/phpenv-ini/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
