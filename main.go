package main

import "github.com/alexedmon1/french-flashcards/cmd"

func main() {
	cmd.Execute()
}
