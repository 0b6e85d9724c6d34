package main

import (
	"github.com/shopops-cloud/shopops/cmd"
	"github.com/shopops-cloud/shopops/pkg/env"
	"github.com/shopops-cloud/shopops/pkg/log"
)

func main() {
	if err := env.Process(); err != nil {
		log.Fatal("environment failure", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal("shopops failure", "error", err)
	}
}
