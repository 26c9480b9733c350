// Package scaffold generates new contributor directories from embedded
// templates.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/wallpack-dev/wallpack/internal/manifest"
)

//go:embed templates
var scaffoldFS embed.FS

// ContributorData holds the template variables for a contributor scaffold.
type ContributorData struct {
	Name     string // display name, e.g. "Jo Doe"
	Username string // directory name, e.g. "jodoe"
	Email    string
	URI      string
	Year     int
}

// NewContributorData fills in derived fields.
func NewContributorData(name, username, email, uri string) *ContributorData {
	return &ContributorData{
		Name:     name,
		Username: username,
		Email:    email,
		URI:      uri,
		Year:     time.Now().Year(),
	}
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Generate creates a contributor directory under
// <repoRoot>/contributors/<username> from the embedded templates. It
// refuses to touch a non-empty directory.
func Generate(repoRoot string, data *ContributorData) (*Result, error) {
	outputDir := filepath.Join(repoRoot, "contributors", data.Username)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("contributor directory %s is not empty; remove existing files first", outputDir)
	}

	entries, err := fs.ReadDir(scaffoldFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplBytes, err := fs.ReadFile(scaffoldFS, filepath.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	// Validate the generated metadata against the JSON schema.
	metaFile := filepath.Join(outputDir, manifest.MetaFileName)
	if _, err := os.Stat(metaFile); err == nil {
		valResult, valErr := manifest.ValidateFile(metaFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate generated me.json: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}
