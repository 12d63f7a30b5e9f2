package main

import "github.com/katalvlaran/dggs/cmd/dggs/cmd"

func main() {
	cmd.Execute()
}
