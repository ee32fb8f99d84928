package main

import (
	"github.com/sugarlabs/aslo-catalog/pkg/cli"
)

func main() {
	cli.Execute()
}
