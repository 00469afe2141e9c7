package main

import (
	"angzarr"
	"angzarr/counter/logic"
)

func main() {
	states := logic.NewStateRouter()
	commands := logic.NewCommandRouter(states)

	cfg := angzarr.ServerConfig{Domain: logic.Domain, DefaultPort: "50210"}
	if err := angzarr.RunAggregateServer(cfg, commands); err != nil {
		panic(err)
	}
}
