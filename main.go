package main

import "github.com/gaurav-prasanna/brdexport/cmd"

func main() {
	cmd.Execute()
}
