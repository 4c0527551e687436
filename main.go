package main

import (
	"github.com/jkeogh/t212cgt/cmd"
)

func main() {
	cmd.Execute()
}
