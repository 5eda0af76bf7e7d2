package main

import "github.com/nfrund/folio/cmd/folio/cmd"

func main() {
	cmd.Execute()
}
