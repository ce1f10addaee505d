package search

import (
	"os"
	"testing"

	"TreeSearch/errutil"
)

func TestMain(m *testing.M) {
	errutil.Debug = true
	os.Exit(m.Run())
}
