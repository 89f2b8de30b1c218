package main

import "github.com/Aquaveo/xmstool-examples/cmd"

func main() {
	cmd.Execute()
}
