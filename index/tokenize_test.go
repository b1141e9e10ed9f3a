package index

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty", "", []string{}},
		{"only short tokens", "a of 12", []string{}},
		{"simple", "Acetylene Gas", []string{"acetylene", "gas"}},
		{"punctuation split", "cement, 43-grade (OPC)", []string{"cement", "grade", "opc"}},
		{"mixed case", "MS Rod TMT", []string{"rod", "tmt"}},
		{"digits kept", "pipe 100mm dia", []string{"pipe", "100mm", "dia"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestNgrams(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{"empty", nil, nil},
		{"single", []string{"gas"}, []string{"gas"}},
		{
			"pair",
			[]string{"acetylene", "gas"},
			[]string{"acetylene", "acetylene gas", "gas"},
		},
		{
			"window capped at three tokens",
			[]string{"first", "class", "mason", "work"},
			[]string{
				"first", "first class", "first class mason",
				"class", "class mason", "class mason work",
				"mason", "mason work",
				"work",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ngrams(tt.tokens)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Ngrams(%v) = %v, want %v", tt.tokens, got, tt.expected)
			}
		})
	}
}
