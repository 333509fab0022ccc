package account

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DefaultTemplates returns the built-in catalog every new account starts
// with. Callers get a fresh slice each time; the catalog itself is fixed.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:          "email_follow_up",
			Name:        "Professional Email Follow-Up",
			Description: "Follow-up email after no response",
			Body: "Subject: Follow-up on {{topic}}\n\nHi {{recipientName}},\n\n" +
				"I hope you are well. I wanted to follow up regarding {{topic}} that we discussed on {{date}}. " +
				"Please let me know if you have any updates or questions.\n\nBest regards,\n{{senderName}}",
		},
		{
			ID:          "bug_report",
			Name:        "Structured Bug Report",
			Description: "Template to report a software bug clearly",
			Body: "Title: {{title}}\n\nEnvironment: {{environment}}\nSteps to Reproduce:\n" +
				"1) {{step1}}\n2) {{step2}}\nExpected: {{expected}}\nActual: {{actual}}\nAdditional Notes: {{notes}}",
		},
	}
}

type catalogFile struct {
	Templates []Template `json:"templates"`
}

// EnsureCatalog writes the default catalog to path if no file exists there
// yet. An existing file is left untouched.
func EnsureCatalog(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(catalogFile{Templates: DefaultTemplates()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
