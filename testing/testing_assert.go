package testing

import (
	"testing"
)

func SimpleAssert(t *testing.T, expression bool) {
	if !expression {
		t.Fatal("assertion failed")
	}
}

func Assert(t *testing.T, expression bool, msg string) {
	if !expression {
		t.Fatal(msg)
	}
}
