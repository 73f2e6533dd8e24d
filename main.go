package main

import "promptfind/cmd"

func main() {
	cmd.Execute()
}
