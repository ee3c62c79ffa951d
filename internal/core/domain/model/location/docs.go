// Package location models the address hierarchy: Country, State and City are
// append-only reference entities identified by natural keys, and Address is the
// user-owned aggregate that references one resolved Place.
//
// All natural-key text is canonicalized with the Normalize functions before it is
// stored or looked up, so differently cased or spaced input resolves to the same rows:
//
//	NormalizeAddressLine1("  123  main st ") == "123 Main St"
//	NormalizeUpper(" new   york ")           == "NEW YORK"
package location
