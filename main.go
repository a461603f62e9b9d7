package main

import (
	"fmt"
	"os"

	"avoronin/cashback-matrix/cmd/banks"
	"avoronin/cashback-matrix/cmd/cheatsheet"
	"avoronin/cashback-matrix/cmd/correct"
	"avoronin/cashback-matrix/cmd/extract"
	"avoronin/cashback-matrix/cmd/importcsv"
	"avoronin/cashback-matrix/cmd/matrix"
	"avoronin/cashback-matrix/cmd/reset"
	"avoronin/cashback-matrix/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(matrix.Cmd)
	root.Cmd.AddCommand(cheatsheet.Cmd)
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(correct.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(banks.Cmd)
	root.Cmd.AddCommand(reset.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
