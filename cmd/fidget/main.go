package main

import "github.com/mkarsten/fidget/cmd"

func main() {
	cmd.Execute()
}
