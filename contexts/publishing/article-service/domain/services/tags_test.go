package services

import (
	"reflect"
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	cases := map[string]string{
		"Team Building":     "team-building",
		"  VDI  ":           "vdi",
		"Incident\tManagement": "incident-management",
		"already-fine":      "already-fine",
		"   ":               "",
	}
	for raw, want := range cases {
		if got := NormalizeTag(raw); got != want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeTagSetDedupes(t *testing.T) {
	got := NormalizeTagSet([]string{"Team Building", "team-building", "HR", "", "  ", "hr"})
	want := []string{"team-building", "hr"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeTagSet = %v, want %v", got, want)
	}
}
