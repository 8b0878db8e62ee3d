package main

import "github.com/sandshell/sandshell/cmd"

func main() {
	cmd.Execute()
}
