package main

import "github.com/pjcli/pj/cmd"

func main() {
	cmd.Execute()
}
