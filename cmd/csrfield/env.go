package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Env map[string]string

func Environment() Env {
	return map[string]string{
		"CSRFIELD_DATA_WIDTH": getenv("CSRFIELD_DATA_WIDTH", "32"),
		"CSRFIELD_INDENT":     getenv("CSRFIELD_INDENT", ""),
	}
}

func (e Env) Print(w io.Writer) {
	for _, k := range e.Keys() {
		fmt.Fprintf(w, "%s=%q\n", k, e[k])
	}
}

func (e Env) Keys() []string {
	keys := maps.Keys(e)
	slices.Sort(keys)
	return keys
}

func (e Env) Value(key string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return ""
}

// Int returns the value of key as an integer, or _default when it is unset
// or not a number.
func (e Env) Int(key string, _default int) int {
	v, err := strconv.Atoi(e.Value(key))
	if err != nil {
		return _default
	}
	return v
}

func getenv(key, _default string) (value string) {
	value = os.Getenv(key)
	if len(value) == 0 {
		value = _default
	}
	return value
}
