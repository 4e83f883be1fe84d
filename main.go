package main

import "milkbook/cmd"

func main() {
	cmd.Execute()
}
