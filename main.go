package main

import "github.com/theirongolddev/ledgerlens/cmd"

func main() {
	cmd.Execute()
}
