// Package adapter converts images to and from other in-process bitmap
// representations.
//
// Each representation is a kind with one Adapter. A Registry holds the
// adapters and is looked up by kind, so callers that exchange images with
// other Go image code do not depend on the engine's internals.
package adapter
