package querybuilder

import "fmt"

type JoinType int

const (
	JoinTypeInner JoinType = iota + 1
	JoinTypeLeft
)

func (j JoinType) ToString() string {
	switch j {
	case JoinTypeInner:
		return "INNER JOIN"
	case JoinTypeLeft:
		return "LEFT JOIN"
	default:
		return ""
	}
}

type join struct {
	joinType JoinType
	table    string
	alias    string
	on       string
	args     []interface{}
}

func (j join) String() string {
	return fmt.Sprintf("%s %s %s ON %s", j.joinType.ToString(), j.table, j.alias, j.on)
}
