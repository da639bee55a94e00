package main

import (
	"fmt"
	"strings"

	"github.com/coregx/cssattr"
)

// layoutTag writes the name=value pairs into one buffer shaped like a start
// tag, `<x name="value" ...>`, and returns it with the matching spans.
// Pairs keep their order, so duplicate names resolve to the first one.
func layoutTag(pairs []string) ([]byte, cssattr.AttributeList, error) {
	input := []byte("<x")
	attrs := make(cssattr.AttributeList, 0, len(pairs))

	for _, pair := range pairs {
		name, value, _ := strings.Cut(pair, "=")
		if name == "" {
			return nil, nil, fmt.Errorf("attribute %q: empty name", pair)
		}

		input = append(input, ' ')
		nameStart := len(input)
		input = append(input, name...)
		nameEnd := len(input)
		input = append(input, '=', '"')
		valueStart := len(input)
		input = append(input, value...)
		valueEnd := len(input)
		input = append(input, '"')

		attrs = append(attrs, cssattr.AttributeSpan{
			Name:  cssattr.MakeRange(nameStart, nameEnd),
			Value: cssattr.MakeRange(valueStart, valueEnd),
		})
	}

	return append(input, '>'), attrs, nil
}
