package main

import "github.com/itsmostafa/mdtoc/cmd"

func main() {
	cmd.Execute()
}
