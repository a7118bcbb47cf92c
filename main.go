package main

import (
	"cpusched/cmd"
)

func main() {
	cmd.Execute()
}
