package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load    bool
	Include bool
	Merge   bool
	Parse   bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("PROP_DEBUG_LOAD")
	d.Include = boolEnv("PROP_DEBUG_INCLUDE")
	d.Merge = boolEnv("PROP_DEBUG_MERGE")
	d.Parse = boolEnv("PROP_DEBUG_PARSE")
	d.Eval = boolEnv("PROP_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Include() bool {
	return d.Include
}
func Merge() bool {
	return d.Merge
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
