package main

import "github.com/alexiusacademia/gofault/cmd"

func main() {
	cmd.Execute()
}
