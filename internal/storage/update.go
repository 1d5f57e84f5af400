package storage

import (
	"strconv"
	"strings"
)

// setClause собирает SET-часть частичного UPDATE по фиксированным именам
// колонок. Значения передаются только позиционными параметрами.
type setClause struct {
	parts []string
	args  []any
}

func setIf[T any](c *setClause, column string, v *T) {
	if v == nil {
		return
	}
	c.args = append(c.args, *v)
	c.parts = append(c.parts, column+" = $"+strconv.Itoa(len(c.args)))
}

// next добавляет аргумент и возвращает его плейсхолдер.
func (c *setClause) next(v any) string {
	c.args = append(c.args, v)
	return "$" + strconv.Itoa(len(c.args))
}

func (c *setClause) String() string {
	return strings.Join(append(c.parts, "updated_at = CURRENT_TIMESTAMP"), ", ")
}
