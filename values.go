package docargs

// Values holds every parsed flag and positional of the selected command,
// keyed by bare argument name. Typed accessors return the zero value when
// the name is absent or holds a different type.
type Values map[string]any

// Has reports whether name was registered on the selected command.
func (v Values) Has(name string) bool {
	_, ok := v[name]

	return ok
}

// String returns the string value of name.
func (v Values) String(name string) string {
	s, _ := v[name].(string)

	return s
}

// Int returns the int value of name.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)

	return i
}

// Float64 returns the float64 value of name.
func (v Values) Float64(name string) float64 {
	f, _ := v[name].(float64)

	return f
}

// Bool returns the bool value of name.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)

	return b
}

// Strings returns the []string value of name.
func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)

	return s
}

// Ints returns the []int value of name.
func (v Values) Ints(name string) []int {
	i, _ := v[name].([]int)

	return i
}

// Float64s returns the []float64 value of name.
func (v Values) Float64s(name string) []float64 {
	f, _ := v[name].([]float64)

	return f
}

// Bools returns the []bool value of name.
func (v Values) Bools(name string) []bool {
	b, _ := v[name].([]bool)

	return b
}
