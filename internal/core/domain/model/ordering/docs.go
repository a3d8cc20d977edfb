// Package ordering describes how records are partitioned into independent
// position sequences.
//
// A Scope names the fields (columns) that partition a table. Binding a scope to
// a record yields Criteria: the exact field values a peer must share to be part
// of the same sequence. A global scope (nil or empty) yields empty Criteria, so
// every record of the table competes for the same sequence.
//
// Example:
//
//	scope := ordering.MustScope("course_id")
//	criteria, err := scope.Bind(module)
//	// criteria == [{course_id <uuid>}]
package ordering
