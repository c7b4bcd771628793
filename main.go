/*
Copyright © 2025 Mehrn0ush
*/
package main

import "github.com/Mehrn0ush/jobfileparser/cmd"

func main() {
	cmd.Execute()
}
