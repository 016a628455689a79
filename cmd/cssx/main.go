package main

import "github.com/cssx-dev/cssx/cmd"

func main() {
	cmd.Execute()
}
