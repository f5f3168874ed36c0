package main

import "gamebuddy-user/cmd"

func main() {
	cmd.Execute()
}
