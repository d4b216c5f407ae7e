package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionTypeRules(t *testing.T) {
	cases := []struct {
		typ           QuestionType
		valid         bool
		requiresSetup bool
		hasAnswer     bool
	}{
		{QuestionTypeMC, true, false, false},
		{QuestionTypeSA, true, false, true},
		{QuestionTypeSQL, true, true, true},
		{"essay", false, false, false},
		{"", false, false, false},
		{"MC", false, false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.typ.Valid())
			assert.Equal(t, tc.requiresSetup, tc.typ.RequiresSetup())
			assert.Equal(t, tc.hasAnswer, tc.typ.HasAnswer())
		})
	}
}
