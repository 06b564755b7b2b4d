package main

import "smartcommit/cmd"

func main() {
	cmd.Execute()
}
