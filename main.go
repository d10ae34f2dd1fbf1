package main

import "minipyc/cmd"

func main() {
	cmd.Execute()
}
