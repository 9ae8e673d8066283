package main

import "task-list.com/task-list/cmd"

func main() {
	cmd.Execute()
}
