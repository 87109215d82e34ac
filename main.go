package main

import "github.com/alexiusacademia/gowing/cmd"

func main() {
	cmd.Execute()
}
