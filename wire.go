// Package angzarr is the client-side routing and state-reconstruction
// core shared by every Angzarr service instance: CommandRouter,
// StateRouter, EventRouter, and the CompensationContext/rejection
// pipeline.
package angzarr

import "strings"

// TypeSuffix extracts the routing key from a type_url: the substring
// after the final '.' or '/', whichever comes later. All routing in this
// package keys on this suffix, never on the full type_url.
//
// Examples:
//
//	TypeSuffix("type.googleapis.com/orders.v1.OrderCreated") == "OrderCreated"
//	TypeSuffix("type.poker/examples.CardsDealt")             == "CardsDealt"
//	TypeSuffix("Foo")                                        == "Foo"
func TypeSuffix(typeURL string) string {
	dot := strings.LastIndexByte(typeURL, '.')
	slash := strings.LastIndexByte(typeURL, '/')
	cut := dot
	if slash > cut {
		cut = slash
	}
	if cut < 0 {
		return typeURL
	}
	return typeURL[cut+1:]
}
