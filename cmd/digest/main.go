package main

import "github.com/nguyentantai21042004/caption-digest/internal/cli"

func main() {
	cli.Execute()
}
