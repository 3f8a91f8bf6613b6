// Package service defines domain-level service interfaces implemented by the infrastructure layer.
package service

// ImageDecoder is the black-box predicate deciding whether uploaded bytes are
// a decodable image, and if so, which canonical extension they carry.
type ImageDecoder interface {
	// Sniff returns the detected lower-case extension (without the dot) for
	// the payload, or an error when the bytes are not a decodable image.
	Sniff(payload []byte) (extension string, err error)
}
