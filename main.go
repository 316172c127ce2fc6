package main

import "github.com/mbierma/confgit/cmd"

func main() {
	cmd.Execute()
}
