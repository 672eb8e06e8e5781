package main

import "github.com/ideaspaper/xcurl/cmd"

func main() {
	cmd.Execute()
}
