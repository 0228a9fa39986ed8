package okane

import (
	"reflect"
	"strings"
	"testing"
)

func TestQuery(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want any
	}{
		{"scalar field", "$.initialBalance", float64(1000)},
		{"projection", "$.transactions[*].amount", []any{float64(5000), float64(3000)}},
		{"single element", "$.transactions[0].id", "a"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Query(strings.NewReader(sampleDoc), tc.path)
			if err != nil {
				t.Fatalf("Query(%q): %v", tc.path, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Query(%q) = %#v, want %#v", tc.path, got, tc.want)
			}
		})
	}
}

func TestQuery_Errors(t *testing.T) {
	if _, err := Query(strings.NewReader("{"), "$.x"); err == nil {
		t.Error("malformed document should fail")
	}
	if _, err := Query(strings.NewReader(sampleDoc), "$.["); err == nil {
		t.Error("malformed path should fail")
	}
}
