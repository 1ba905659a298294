package main

import "dictcrackr/cmd"

func main() {
	cmd.Execute()
}
