package main

import "schema-engine/cmd"

func main() {
	cmd.Execute()
}
