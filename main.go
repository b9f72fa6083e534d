package main

import "github.com/kasuboski/reelinfo/cmd"

func main() {
	cmd.Execute()
}
