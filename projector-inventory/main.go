package main

import (
	"go.uber.org/zap"

	"angzarr"
	"angzarr/projector-inventory/logic"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	handler := logic.NewProjectorHandler(logger)

	cfg := angzarr.ServerConfig{Domain: logic.Name, DefaultPort: "50260"}
	if err := angzarr.RunProjectorServer(cfg, handler); err != nil {
		panic(err)
	}
}
