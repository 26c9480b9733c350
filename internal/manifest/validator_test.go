package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid-me.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-me.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid, got valid")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}

	// The fixture omits "email", so the schema must report it missing.
	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Message, "email") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue mentions the missing email field: %+v", result.Issues)
	}
}

func TestValidate_BadJSON(t *testing.T) {
	_, err := Validate([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestValidate_IssuePaths(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-me.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}

	// Nested wallpaper issues must carry instance paths into the array.
	var nested bool
	for _, issue := range result.Issues {
		if strings.HasPrefix(issue.Path, "/wallpapers/0") {
			nested = true
		}
	}
	if !nested {
		t.Errorf("no issue under /wallpapers/0: %+v", result.Issues)
	}
}
