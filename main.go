package main

import "github.com/chris/todosort/cmd"

func main() {
	cmd.Execute()
}
