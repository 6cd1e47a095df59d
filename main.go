package main

import "github.com/frahmantamala/asset-tracker/cmd"

func main() {
	cmd.Execute()
}
