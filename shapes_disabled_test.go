//go:build nospecialized

package introspectable

import (
	"errors"
	"testing"

	"github.com/Peperworx/introspectable/info"
)

func stringDescriptor() info.Descriptor { return info.Slice{Elem: info.ScalarOf(info.U8)} }

func TestWithoutSpecialization(t *testing.T) {
	assertDescriptor(t, stringDescriptor(), MustDescribe[string]())

	if _, err := Describe[map[string]int](); !errors.Is(err, ErrNotDescribable) {
		t.Errorf("maps have no descriptor without specialization, got %v", err)
	}
}
