// Package merge implements a depth-bounded structural merge over generic
// TOML values as produced by go-toml/v2 when decoding into `any`
// (map[string]any for tables, []any for arrays, scalars otherwise).
package merge

// Merge combines two generic TOML values, with values from right taking
// precedence over values from left. depth controls how many nesting levels
// receive merge semantics: at depth 0 the right value replaces the left
// wholesale. Input values are never mutated.
//
// Tables merge key-by-key. Arrays merge element-by-element when elements
// carry an identifying "name" field; elements without one are appended.
// Nested arrays beyond the depth budget act as overrides, so positional
// data such as argument vectors is replaced atomically instead of being
// spliced together.
func Merge(left, right any, depth int) any {
	switch l := left.(type) {
	case map[string]any:
		r, ok := right.(map[string]any)
		if !ok {
			return right
		}
		return mergeTables(l, r, depth)
	case []any:
		r, ok := right.([]any)
		if !ok {
			return right
		}
		return mergeArrays(l, r, depth)
	default:
		return right
	}
}

// mergeTables unions the keys of both tables, recursing on keys present in
// both. A new map is returned; neither input is modified.
func mergeTables(left, right map[string]any, depth int) any {
	if depth == 0 {
		return right
	}

	result := make(map[string]any, len(left)+len(right))
	for k, v := range left {
		result[k] = v
	}

	for k, rv := range right {
		if lv, ok := result[k]; ok {
			result[k] = Merge(lv, rv, depth-1)
		} else {
			result[k] = rv
		}
	}

	return result
}

// mergeArrays treats both arrays as identity-keyed collections. A right
// element whose "name" matches a left element is merged into that element
// in place, preserving the left array's order. Right elements with no
// match, or with no name at all, are appended in their original order.
func mergeArrays(left, right []any, depth int) any {
	if depth == 0 {
		return right
	}

	result := make([]any, len(left), len(left)+len(right))
	copy(result, left)

	for _, rv := range right {
		name, ok := elementName(rv)
		if !ok {
			result = append(result, rv)
			continue
		}

		pos := -1
		for i := 0; i < len(left); i++ {
			if lname, ok := elementName(result[i]); ok && lname == name {
				pos = i
				break
			}
		}

		if pos < 0 {
			result = append(result, rv)
			continue
		}

		result[pos] = Merge(result[pos], rv, depth-1)
	}

	return result
}

// elementName extracts the identifying "name" field of an array element.
// Only table elements with a string name participate in identity matching.
func elementName(v any) (string, bool) {
	table, ok := v.(map[string]any)
	if !ok {
		return "", false
	}

	name, ok := table["name"].(string)
	return name, ok
}
