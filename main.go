package main

import "hrs/cmd"

func main() {
	cmd.Execute()
}
