package main

import "capuchin/cmd"

func main() {
	cmd.Execute()
}
