package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toMap(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestValidateScoreMap(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "minimal valid answer",
			payload: `{"score": 85}`,
		},
		{
			name:    "full answer",
			payload: `{"score": 72.5, "name": "Jane", "skills": ["go"], "rationale": ["solid"], "recommendedAction": "interview"}`,
		},
		{
			name:    "out of range score is structurally valid",
			payload: `{"score": 150}`,
		},
		{
			name:    "negative score is structurally valid",
			payload: `{"score": -4}`,
		},
		{
			name:    "score missing is still a valid document",
			payload: `{"rationale": ["ok"]}`,
		},
		{
			name:    "score as string",
			payload: `{"score": "85"}`,
			wantErr: true,
		},
		{
			name:    "skills not an array",
			payload: `{"score": 10, "skills": "go"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScoreMap(toMap(t, tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
