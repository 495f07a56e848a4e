package sql

// PredicateFunc constrains the predicate type an entity package defines,
// any named func(*Selector).
type PredicateFunc interface {
	~func(*Selector)
}

// ColumnField is a named column carrying type-safe comparison predicates.
// Declaring columns once with their value type replaces a page of generated
// per-field predicate functions:
//
//	var Age = sql.ColumnField[predicate.User, int]("age")
//	query.Where(user.Age.GTE(18))
//
// Predicates qualify the column against the selector's FROM table at
// render time, so the same field works across aliases and joins.
type ColumnField[P PredicateFunc, T any] string

// Name returns the column name.
func (f ColumnField[P, T]) Name() string { return string(f) }

// EQ matches rows whose column equals v.
func (f ColumnField[P, T]) EQ(v T) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows whose column differs from v.
func (f ColumnField[P, T]) NEQ(v T) P {
	return P(FieldNEQ(string(f), v))
}

// GT matches rows whose column is greater than v.
func (f ColumnField[P, T]) GT(v T) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows whose column is greater than or equal to v.
func (f ColumnField[P, T]) GTE(v T) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows whose column is less than v.
func (f ColumnField[P, T]) LT(v T) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows whose column is less than or equal to v.
func (f ColumnField[P, T]) LTE(v T) P {
	return P(FieldLTE(string(f), v))
}

// In matches rows whose column is one of vs. An empty list matches no rows.
func (f ColumnField[P, T]) In(vs ...T) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows whose column is none of vs. An empty list matches all rows.
func (f ColumnField[P, T]) NotIn(vs ...T) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNull matches rows whose column is NULL.
func (f ColumnField[P, T]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows whose column is not NULL.
func (f ColumnField[P, T]) NotNull() P {
	return P(FieldNotNull(string(f)))
}

// IsNil is an alias for IsNull.
func (f ColumnField[P, T]) IsNil() P { return f.IsNull() }

// NotNil is an alias for NotNull.
func (f ColumnField[P, T]) NotNil() P { return f.NotNull() }

// StringField is a ColumnField over string values with the pattern-match
// predicates text columns get.
//
//	var Email = sql.StringField[predicate.User]("email")
//	query.Where(user.Email.Contains("@gmail"))
type StringField[P PredicateFunc] string

// col widens the field to its generic form for the shared comparisons.
func (f StringField[P]) col() ColumnField[P, string] {
	return ColumnField[P, string](f)
}

// Name returns the column name.
func (f StringField[P]) Name() string { return string(f) }

// EQ matches rows whose column equals v.
func (f StringField[P]) EQ(v string) P { return f.col().EQ(v) }

// NEQ matches rows whose column differs from v.
func (f StringField[P]) NEQ(v string) P { return f.col().NEQ(v) }

// GT matches rows whose column sorts after v.
func (f StringField[P]) GT(v string) P { return f.col().GT(v) }

// GTE matches rows whose column sorts at or after v.
func (f StringField[P]) GTE(v string) P { return f.col().GTE(v) }

// LT matches rows whose column sorts before v.
func (f StringField[P]) LT(v string) P { return f.col().LT(v) }

// LTE matches rows whose column sorts at or before v.
func (f StringField[P]) LTE(v string) P { return f.col().LTE(v) }

// In matches rows whose column is one of vs.
func (f StringField[P]) In(vs ...string) P { return f.col().In(vs...) }

// NotIn matches rows whose column is none of vs.
func (f StringField[P]) NotIn(vs ...string) P { return f.col().NotIn(vs...) }

// IsNull matches rows whose column is NULL.
func (f StringField[P]) IsNull() P { return f.col().IsNull() }

// NotNull matches rows whose column is not NULL.
func (f StringField[P]) NotNull() P { return f.col().NotNull() }

// IsNil is an alias for IsNull.
func (f StringField[P]) IsNil() P { return f.col().IsNull() }

// NotNil is an alias for NotNull.
func (f StringField[P]) NotNil() P { return f.col().NotNull() }

// Contains matches rows whose column contains v as a substring. LIKE
// wildcards in v are escaped.
func (f StringField[P]) Contains(v string) P {
	return P(FieldContains(string(f), v))
}

// ContainsFold matches rows whose column contains v case-insensitively.
func (f StringField[P]) ContainsFold(v string) P {
	return P(FieldContainsFold(string(f), v))
}

// HasPrefix matches rows whose column starts with v.
func (f StringField[P]) HasPrefix(v string) P {
	return P(FieldHasPrefix(string(f), v))
}

// HasSuffix matches rows whose column ends with v.
func (f StringField[P]) HasSuffix(v string) P {
	return P(FieldHasSuffix(string(f), v))
}

// EqualFold matches rows whose column equals v case-insensitively.
func (f StringField[P]) EqualFold(v string) P {
	return P(FieldEqualFold(string(f), v))
}
