package main

import "github.com/jsphweid/rsxml/cmd"

func main() {
	cmd.Execute()
}
