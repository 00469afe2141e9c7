package angzarr

// TypeURLPrefix is the shared prefix this module's example domains use
// when building type_urls for their JSON-encoded payloads.
const TypeURLPrefix = "type.angzarr/examples."

// TypeURL builds a full type_url for a payload named suffix, e.g.
// TypeURL("OrderCreated") == "type.angzarr/examples.OrderCreated".
func TypeURL(suffix string) string {
	return TypeURLPrefix + suffix
}
