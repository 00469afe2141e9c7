package main

import (
	"angzarr"
	"angzarr/order/logic"
)

func main() {
	states := logic.NewStateRouter()
	commands := logic.NewCommandRouter(states)

	cfg := angzarr.ServerConfig{Domain: logic.Domain, DefaultPort: "50220"}
	if err := angzarr.RunAggregateServer(cfg, commands); err != nil {
		panic(err)
	}
}
