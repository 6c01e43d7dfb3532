package main

import "github.com/jsphweid/tjadex/cmd"

func main() {
	cmd.Execute()
}
