package main

import "github.com/ogaworks/eda/cmd"

func main() {
	cmd.Execute()
}
