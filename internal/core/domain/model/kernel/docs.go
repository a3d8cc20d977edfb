// Package kernel holds the value objects shared by every catalog aggregate:
// UUID identifiers and Position, the optional ordinal that places a record
// inside its ordering scope.
//
// Zero values of both types are deliberately invalid (UUID) or "unset"
// (Position); instances are created through their constructors only.
package kernel
