package main

import (
	librarian "github.com/kerbaras/librarian/cmd/librarian"
)

func main() {
	librarian.Execute()
}
