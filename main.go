package main

import "goal-tracker.com/goal-tracker/cmd"

func main() {
	cmd.Execute()
}
