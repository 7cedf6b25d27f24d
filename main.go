package main

import (
	"fmt"
	"os"

	"hylin/einvoice-csv/cmd/batch"
	"hylin/einvoice-csv/cmd/categorize"
	"hylin/einvoice-csv/cmd/export"
	"hylin/einvoice-csv/cmd/parse"
	"hylin/einvoice-csv/cmd/root"
	"hylin/einvoice-csv/cmd/stats"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
