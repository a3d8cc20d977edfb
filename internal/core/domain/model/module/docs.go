// Package module provides the Module aggregate: a titled section of a course
// that occupies a position among the modules of the same course.
//
// Positions are scoped by course (see Scope). A module either receives an
// explicit position from its author or gets the next free one from the
// position assigner right before its first save.
package module
