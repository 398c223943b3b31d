package bank

import _ "embed"

//go:embed starter.json
var starterJSON []byte

// StarterBank returns the embedded demo bank so the app is usable before
// the learner has installed any bank files.
func StarterBank() (*Bank, error) {
	return Parse(starterJSON, "starter.json")
}
