package main

import (
	"hastec/cmd"
	"os"
)

func main() {
	os.Exit(cmd.Execute())
}
