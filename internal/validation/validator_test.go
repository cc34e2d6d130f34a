// Movierecs - Item-based Movie Rating Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecs

package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

type testEngineConfig struct {
	FallbackRating float64 `validate:"finite"`
	MaxRatingDiff  float64 `validate:"gt=0,finite"`
	Format         string  `validate:"oneof=text json"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     testEngineConfig
		wantErr   bool
		wantField string
		wantTag   string
	}{
		{
			name:  "valid config",
			input: testEngineConfig{FallbackRating: 2.5, MaxRatingDiff: 4.5, Format: "text"},
		},
		{
			name:      "NaN fallback",
			input:     testEngineConfig{FallbackRating: math.NaN(), MaxRatingDiff: 4.5, Format: "json"},
			wantErr:   true,
			wantField: "FallbackRating",
			wantTag:   "finite",
		},
		{
			name:      "zero max diff",
			input:     testEngineConfig{FallbackRating: 2.5, MaxRatingDiff: 0, Format: "json"},
			wantErr:   true,
			wantField: "MaxRatingDiff",
			wantTag:   "gt",
		},
		{
			name:      "infinite max diff",
			input:     testEngineConfig{FallbackRating: 2.5, MaxRatingDiff: math.Inf(1), Format: "json"},
			wantErr:   true,
			wantField: "MaxRatingDiff",
			wantTag:   "finite",
		},
		{
			name:      "unknown format",
			input:     testEngineConfig{FallbackRating: 2.5, MaxRatingDiff: 4.5, Format: "xml"},
			wantErr:   true,
			wantField: "Format",
			wantTag:   "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var verr *RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *RequestValidationError", err)
			}
			if len(verr.Errors()) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(verr.Errors()), err)
			}
			fe := verr.Errors()[0]
			if fe.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", fe.Field(), tt.wantField)
			}
			if fe.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", fe.Tag(), tt.wantTag)
			}
		})
	}
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  float64
		wantErr bool
	}{
		{name: "lowest half star", rating: 0.5},
		{name: "highest", rating: 5.0},
		{name: "middle", rating: 3.5},
		{name: "below scale", rating: 0.0, wantErr: true},
		{name: "above scale", rating: 5.5, wantErr: true},
		{name: "NaN", rating: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRating(tt.rating, 0.5, 5.0)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRating(%v) error = %v, wantErr %v", tt.rating, err, tt.wantErr)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "rating ") {
				t.Errorf("message %q should name the rating field", err.Error())
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := ValidateStruct(&testEngineConfig{FallbackRating: 2.5, MaxRatingDiff: -1, Format: "text"})
	if err == nil {
		t.Fatal("expected error")
	}
	want := "MaxRatingDiff must be greater than 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
