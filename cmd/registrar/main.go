package main

import "github.com/campusware/registrar/cmd/registrar/cmd"

func main() {
	cmd.Execute()
}
