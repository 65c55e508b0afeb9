// Copyright (c) 2026 Meridian LMS. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianlms/meridian/pkg/slug"
)

/*
TestFrom verifies the normalization pipeline over representative inputs.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Intro to Go", "intro-to-go"},
		{"accents", "Éducation Générale", "education-generale"},
		{"punctuation", "Acme Learning Co.", "acme-learning-co"},
		{"collapsed_hyphens", "a  --  b", "a-b"},
		{"trimmed", "  Hello!  ", "hello"},
		{"digits_kept", "Go 102: Channels", "go-102-channels"},
		{"empty", "", ""},
		{"only_symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
