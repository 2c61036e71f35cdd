package main

import (
	"fmt"
	"os"

	"fjacquet/goalcast/cmd/predict"
	"fjacquet/goalcast/cmd/root"
	"fjacquet/goalcast/cmd/serve"
)

func init() {
	root.Cmd.AddCommand(predict.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
