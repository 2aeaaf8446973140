package main

import "github.com/alexiusacademia/govalley/cmd"

func main() {
	cmd.Execute()
}
