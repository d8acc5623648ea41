package apicontract

import _ "embed"

//go:embed openapi.yml
var contract []byte

// Contract returns the embedded OpenAPI document.
func Contract() []byte {
	return contract
}
