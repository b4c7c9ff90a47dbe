package util

import (
	"reflect"
	"strings"
	"testing"
)

func TestIndexFunc(t *testing.T) {
	s := []string{"a", "b", "c"}
	if got := IndexFunc(s, func(v string) bool { return v == "b" }); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := IndexFunc(s, func(v string) bool { return v == "x" }); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func TestMap(t *testing.T) {
	if got := Map[string, string](nil, strings.ToUpper); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	got := Map([]string{"a", "b"}, strings.ToUpper)
	if want := []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
