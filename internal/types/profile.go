// Package types provides type definitions for structured data used throughout the intern-match system.
package types

import (
	"encoding/json"
	"strings"
)

// Profile is a candidate's structured professional data, as produced by the
// external resume-parsing flow. Every field is optional: absence means
// "not provided", never an error.
type Profile struct {
	Skills         []string        `json:"skills,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// Experience is a single work experience entry.
type Experience struct {
	Title            string `json:"title,omitempty"`
	Company          string `json:"company,omitempty"`
	Duration         string `json:"duration,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
	Achievements     string `json:"achievements,omitempty"`
}

// HasDetail reports whether the entry carries achievements or responsibilities text.
func (e Experience) HasDetail() bool {
	return strings.TrimSpace(e.Achievements) != "" || strings.TrimSpace(e.Responsibilities) != ""
}

// Education is a single education entry.
type Education struct {
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	Institution  string `json:"institution,omitempty"`
	Years        string `json:"years,omitempty"`
	GPA          string `json:"gpa,omitempty"`
}

// HasDetail reports whether the entry carries a GPA or field of study.
func (e Education) HasDetail() bool {
	return strings.TrimSpace(e.GPA) != "" || strings.TrimSpace(e.FieldOfStudy) != ""
}

// Project is a single project entry.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	Name         string `json:"name,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// DecodeProfile decodes a Profile from JSON, tolerating malformed sections.
// Resume parsers occasionally emit a string where an array is expected;
// any field that fails to decode is treated as not provided so that scoring
// stays a total function over realistic inputs.
func DecodeProfile(data []byte) Profile {
	var p Profile
	if err := json.Unmarshal(data, &p); err == nil {
		return p
	}

	// Field-by-field fallback: keep whatever sections decode cleanly.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Profile{}
	}

	if v, ok := raw["skills"]; ok {
		_ = json.Unmarshal(v, &p.Skills)
	}
	if v, ok := raw["experience"]; ok {
		_ = json.Unmarshal(v, &p.Experience)
	}
	if v, ok := raw["education"]; ok {
		_ = json.Unmarshal(v, &p.Education)
	}
	if v, ok := raw["projects"]; ok {
		_ = json.Unmarshal(v, &p.Projects)
	}
	if v, ok := raw["certifications"]; ok {
		_ = json.Unmarshal(v, &p.Certifications)
	}
	return p
}

// Signature is the condensed skill/keyword view of a profile handed to the
// AI-ranking collaborator.
type Signature struct {
	Skills     []string `json:"skills,omitempty"`
	Experience []string `json:"experience,omitempty"`
	Education  []string `json:"education,omitempty"`
}

// BuildSignature condenses a profile into the signature consumed by ranking.
func BuildSignature(p Profile) Signature {
	sig := Signature{Skills: p.Skills}
	for _, exp := range p.Experience {
		if title := strings.TrimSpace(exp.Title); title != "" {
			sig.Experience = append(sig.Experience, title)
		}
	}
	for _, edu := range p.Education {
		parts := make([]string, 0, 2)
		if d := strings.TrimSpace(edu.Degree); d != "" {
			parts = append(parts, d)
		}
		if f := strings.TrimSpace(edu.FieldOfStudy); f != "" {
			parts = append(parts, f)
		}
		if len(parts) > 0 {
			sig.Education = append(sig.Education, strings.Join(parts, ", "))
		}
	}
	return sig
}
