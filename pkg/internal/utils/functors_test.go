// functors_test.go file
package utils_test

import (
	"reflect"
	"testing"

	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
)

func TestMap(t *testing.T) {
	elems := []int{1, 2, 3, 4}
	doubledElems := utils.Map(elems, func(i int) int {
		return i * 2
	})

	expected := []int{2, 4, 6, 8}
	if !reflect.DeepEqual(doubledElems, expected) {
		t.Errorf("Expected %v, got %v", expected, doubledElems)
	}
}

func TestFilter(t *testing.T) {
	elems := []int{1, 2, 3, 4, 5, 6}
	filteredElems := utils.Filter(elems, func(i int) bool {
		return i%2 == 0 // Keep only even numbers
	})

	expected := []int{2, 4, 6}
	if !reflect.DeepEqual(filteredElems, expected) {
		t.Errorf("Expected %v, got %v", expected, filteredElems)
	}
}

func TestContains(t *testing.T) {
	elems := []string{"sine", "square", "triangle"}
	if !utils.Contains(elems, "square") {
		t.Errorf("Expected slice to contain %q", "square")
	}
	if utils.Contains(elems, "sawtooth") {
		t.Errorf("Did not expect slice to contain %q", "sawtooth")
	}
}

func TestGenerateUniqueHash(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()
	if len(a) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(a))
	}
	if a == b {
		t.Errorf("Expected distinct hashes, got %q twice", a)
	}
}
