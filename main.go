package main

import "github.com/uiasnap/uiasnap/cmd"

func main() {
	cmd.Execute()
}
