package main

import (
	"github.com/mouse-blink/archdoc/cmd"
)

func main() {
	cmd.Execute()
}
