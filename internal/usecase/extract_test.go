package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFields(t *testing.T) {
	text := "John Doe\njohn.doe@example.com\n+1 555-123-4567\nSenior backend engineer."

	fields := ExtractFields(text)

	require.NotNil(t, fields.Name)
	assert.Equal(t, "John Doe", *fields.Name)
	require.NotNil(t, fields.Email)
	assert.Equal(t, "john.doe@example.com", *fields.Email)
	require.NotNil(t, fields.Phone)
	assert.NotEmpty(t, fields.Summary)
}

func TestExtractFieldsDeterministic(t *testing.T) {
	text := "Jane Roe\njane@corp.io\nSkills: Go, SQL"
	first := ExtractFields(text)
	second := ExtractFields(text)
	assert.Equal(t, first, second)
}

func TestExtractFieldsEmptyInput(t *testing.T) {
	fields := ExtractFields("")
	assert.Nil(t, fields.Name)
	assert.Nil(t, fields.Email)
	assert.Nil(t, fields.Phone)
	assert.Empty(t, fields.Summary)
}

func TestExtractNameSkipsHeadersAndContacts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "section header skipped",
			text: "Summary\nJane Roe\njane@x.com",
			want: "Jane Roe",
		},
		{
			name: "email line skipped",
			text: "jane@x.com\nJane Roe",
			want: "Jane Roe",
		},
		{
			name: "leading blank lines skipped",
			text: "\n\n  Alex Smith  \n",
			want: "Alex Smith",
		},
		{
			name: "long non-ascii name counted in runes",
			text: "Владимир Александрович Константинов\nvk@example.com",
			want: "Владимир Александрович Константинов",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractName(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractNameRejectsDigitHeavyLines(t *testing.T) {
	got := extractName("+49 151 2345 6a78\n")
	assert.Nil(t, got)
}

func TestExtractSummaryCapsAtTenLines(t *testing.T) {
	text := "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl"
	got := extractSummary(text)
	assert.Equal(t, "a b c d e f g h i j", got)
}
