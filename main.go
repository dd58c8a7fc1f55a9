// Command useed is the reference CLI for the universal seed library.
package main

import "github.com/universalseed/useed/cli"

func main() {
	cli.Main()
}
