package cache

import "testing"

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"note", noteKey(12), "note:12"},
		{"user notes", userNotesKey(7), "notes:user:7"},
		{"search", searchKey(7, "golang"), "notes:search:7:golang"},
		{"shared", sharedKey(9), "notes:shared:9"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s key = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
