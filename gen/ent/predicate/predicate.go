// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Verification is the predicate function for verification builders.
type Verification func(*sql.Selector)
