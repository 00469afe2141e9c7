package main

import (
	"angzarr"
	"angzarr/pm-fulfillment/logic"
)

func main() {
	handler := logic.NewProcessManagerHandler()

	cfg := angzarr.ServerConfig{Domain: logic.Name, DefaultPort: "50250"}
	if err := angzarr.RunProcessManagerServer(cfg, handler); err != nil {
		panic(err)
	}
}
