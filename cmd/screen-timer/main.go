package main

import "github.com/oshokin/screen-timer/cmd/screen-timer/cmd"

func main() {
	cmd.Execute()
}
