package main

import "github.com/inovacc/stockfolio/cmd"

func main() {
	cmd.Execute()
}
