package main

import (
	"github.com/go-imsto/batchresize/cmd"
)

func main() {
	cmd.Main()
}
