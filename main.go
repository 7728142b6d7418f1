package main

import "github.com/pteropackages/soar/cmd"

func main() {
	cmd.Execute()
}
