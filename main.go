package main

import "github.com/mame82/mfastboot/cmd"

func main() {
	cmd.Execute()
}
