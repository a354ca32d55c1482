package main

import "github.com/bensonms/ado-auto-review/src/handler/cli"

func main() {
	cli.Run()
}
