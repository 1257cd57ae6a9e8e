package main

import "github.com/oceandyn/gocean/cmd"

func main() {
	cmd.Execute()
}
