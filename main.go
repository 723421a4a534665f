package main

import "github.com/iburimskiy/mouse-away/cmd"

func main() {
	cmd.Execute()
}
