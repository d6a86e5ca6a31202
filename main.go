package main

import "github.com/inovacc/degreeclass/cmd"

func main() {
	cmd.Execute()
}
