package output

import (
	"strings"
	"testing"
)

func TestGetOutputFormat(t *testing.T) {
	format := GetOutputFormat()
	if format != FormatJSON && format != FormatText && format != FormatTable {
		t.Errorf("Invalid output format: %v", format)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		isValid bool
	}{
		{"json", true},
		{"text", true},
		{"table", true},
		{"yaml", false},
		{"", false},
	}

	for _, tt := range tests {
		result := ValidateOutputFormat(tt.format)
		if result != tt.isValid {
			t.Errorf("ValidateOutputFormat(%s): got %v, want %v", tt.format, result, tt.isValid)
		}
	}
}

func TestFormatAsJSON(t *testing.T) {
	data := map[string]interface{}{"destination": "Lisbon", "days": 5}

	out, err := FormatAsJSON(data)
	if err != nil {
		t.Fatalf("FormatAsJSON failed: %v", err)
	}
	if !strings.Contains(out, "Lisbon") {
		t.Errorf("Expected destination in output: %s", out)
	}
}

func TestPrintFunctions_NoNilPointers(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Print function panicked: %v", r)
		}
	}()

	data := map[string]interface{}{
		"title": "Alpine hiking week",
		"id":    123,
		"tags":  []string{"hiking", "alps"},
	}

	Print("Tour", data)
	PrintRecord("Tour", data)
	PrintSuccess("Operation completed")
	PrintError("Operation failed")

	items := []map[string]interface{}{
		{"title": "tour1", "id": 1},
		{"title": "tour2", "id": 2},
	}
	PrintList("Tours", items, []string{"title", "id"})
}
