// File: main.go
package main

import "github.com/fernandezcuesta/govms/cmd"

func main() {
	cmd.Execute()
}
