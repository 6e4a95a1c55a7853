package main

import "github.com/narasux/chemlab/cmd"

func main() {
	cmd.Execute()
}
