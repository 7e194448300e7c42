/*
Copyright © 2025 cfinspect authors
*/
package main

import "cfinspect/cmd"

func main() {
	cmd.Execute()
}
