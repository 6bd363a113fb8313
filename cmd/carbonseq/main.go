package main

import (
	"github.com/dragidude/CarbonSequesterModel/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
