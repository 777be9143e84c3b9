package main

import (
	"github.com/localscan/explorer/cmd"
)

func main() {
	cmd.Execute()
}
