package querybuilder

// InsertRows holds one slice of values per inserted row.
type InsertRows [][]interface{}
