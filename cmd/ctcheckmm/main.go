package main

import (
	"github.com/pkeir/ctcheckmm/pkg/cmd"
)

func main() {
	cmd.Execute()
}
