package main

import "bank-dashboard/cmd"

func main() {
	cmd.Execute()
}
