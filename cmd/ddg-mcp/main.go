package main

import (
	"github.com/habiliai/ddg-mcp/cmd/ddg-mcp/cmd"
)

func main() {
	cmd.Execute()
}
