package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRecord_Normalize(t *testing.T) {
	r := &ResumeRecord{
		Name:       "Jane Doe",
		Experience: []Experience{{Title: "Engineer"}},
		Projects:   []Project{{Name: "CLI tool"}},
	}
	r.Normalize()

	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Achievements)
	assert.NotNil(t, r.Experience[0].Description)
	assert.NotNil(t, r.Projects[0].Technologies)
}

func TestResumeRecord_NormalizeIdempotent(t *testing.T) {
	r := &ResumeRecord{}
	r.Normalize()
	before, err := json.Marshal(r)
	require.NoError(t, err)

	r.Normalize()
	after, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestResumeRecord_Validate(t *testing.T) {
	t.Run("empty record is valid", func(t *testing.T) {
		r := &ResumeRecord{}
		r.Normalize()
		assert.NoError(t, r.Validate())
	})

	t.Run("bad email rejected", func(t *testing.T) {
		r := &ResumeRecord{Email: "not-an-email"}
		r.Normalize()
		assert.Error(t, r.Validate())
	})

	t.Run("bad website rejected", func(t *testing.T) {
		r := &ResumeRecord{Website: "::not a url::"}
		r.Normalize()
		assert.Error(t, r.Validate())
	})

	t.Run("gpa out of range rejected", func(t *testing.T) {
		r := &ResumeRecord{Education: []Education{{GPA: 7.2}}}
		r.Normalize()
		assert.Error(t, r.Validate())
	})

	t.Run("complete record is valid", func(t *testing.T) {
		r := &ResumeRecord{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Website: "https://janedoe.dev",
			Skills:  []string{"Go", "SQL"},
			Experience: []Experience{
				{Title: "Engineer", Company: "Acme", StartDate: "2020-01", Current: true},
			},
			Education: []Education{{Degree: "BS", Field: "CS", GPA: 3.9}},
		}
		r.Normalize()
		assert.NoError(t, r.Validate())
	})
}

func TestResumeRecord_JSONRoundTrip(t *testing.T) {
	r := &ResumeRecord{
		Name:   "Jane Doe",
		Skills: []string{"Go"},
		Experience: []Experience{
			{Title: "Engineer", StartDate: "2020-01", EndDate: "2022-06", Description: []string{"Built things"}},
		},
	}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded ResumeRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *r, decoded)
}
