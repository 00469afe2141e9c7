package main

import (
	"angzarr"
	"angzarr/saga-order-inventory/logic"
)

func main() {
	handler := logic.NewSagaHandler()

	cfg := angzarr.ServerConfig{Domain: logic.Name, DefaultPort: "50240"}
	if err := angzarr.RunSagaServer(cfg, handler); err != nil {
		panic(err)
	}
}
