package utils

import (
	"github.com/go-json-experiment/json"
)

// Remarshal copies input into output going through its JSON form.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input)
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}
