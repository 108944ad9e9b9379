package main

import "github.com/theirongolddev/walletpal/cmd"

func main() {
	cmd.Execute()
}
