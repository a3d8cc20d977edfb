// Package content provides the Content aggregate: one item (text, video,
// image or file) of a module, ordered among the contents of that module.
package content
