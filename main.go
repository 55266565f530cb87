package main

import "github.com/notargets/dbwavelets/cmd"

func main() {
	cmd.Execute()
}
