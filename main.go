package main

import "valvelet/cmd"

func main() {
	cmd.Execute()
}
