package main

import (
	"github.com/three-bundles/update-index/cmd"
	"github.com/three-bundles/update-index/internal/config"
)

func init() {
	config.InitConfig()
	config.InitViper()
}

func main() {
	cmd.Execute()
}
