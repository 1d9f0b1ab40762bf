package main

import "github.com/mockmate/interview-engine/cmd"

func main() {
	cmd.Execute()
}
