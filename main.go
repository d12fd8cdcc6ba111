package main

import "devsync/cmd"

func main() {
	cmd.Execute()
}
