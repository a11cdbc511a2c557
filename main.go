package main

import "github.com/geosearch/backend/cmd"

func main() {
	cmd.Execute()
}
