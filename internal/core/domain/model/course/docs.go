// Package course provides the Course aggregate root of the catalog.
//
// A course is the scope that orders its modules: every module position is
// counted within the course that owns it.
package course
