package domain

import (
	"database/sql/driver"
	"fmt"
	"slices"

	"github.com/goccy/go-json"
)

// IDList is a list of entity ids stored as a JSON array column.
type IDList []string

// Value implements driver.Valuer.
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for IDList: %T", value)
	}

	list := IDList{}
	if err := json.Unmarshal(bytes, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

func (l IDList) Contains(id string) bool {
	return slices.Contains(l, id)
}

// Remove drops every occurrence of id and reports whether anything changed.
func (l *IDList) Remove(id string) bool {
	n := len(*l)
	*l = slices.DeleteFunc(*l, func(s string) bool { return s == id })
	return len(*l) != n
}
