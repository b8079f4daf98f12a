package main

import "github.com/iksnae/hive-session/cmd"

func main() {
	cmd.Execute()
}
