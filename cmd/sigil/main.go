package main

import "github.com/ThatOtherAndrew/sigil/cmd"

func main() {
	cmd.Execute()
}
