package main

import (
	"github.com/lisadascse72/Recipe-generator/cmd"
)

func main() {
	cmd.Execute()
}
