package main

import "github.com/nao1215/tablediff/cmd"

func main() {
	cmd.Execute()
}
