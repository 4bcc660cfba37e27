package csvrepl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	t.Parallel()

	want := []string{"distinct", "select", "from", "group", "by", "order", "where", "count"}
	assert.Equal(t, want, Keywords())

	got := Keywords()
	got[0] = "changed"
	assert.Equal(t, want, Keywords(), "callers must not be able to modify the keywords")
}

func TestBuildVocabulary(t *testing.T) {
	t.Parallel()

	v := BuildVocabulary([]string{"select", "from"}, []string{"name", "age_"}, []string{"name", "city"})
	assert.Equal(t, []string{"select", "from", "name", "age_", "city"}, v.Words())

	empty := BuildVocabulary(Keywords())
	assert.Equal(t, Keywords(), empty.Words())
}

func TestVocabulary_Complete(t *testing.T) {
	t.Parallel()

	v := BuildVocabulary([]string{"select", "from"}, []string{"name"})

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "Column prefix", prefix: "na", want: []string{"name"}},
		{name: "Keyword prefix", prefix: "s", want: []string{"select"}},
		{name: "Empty prefix matches everything", prefix: "", want: []string{"select", "from", "name"}},
		{name: "Exact word", prefix: "from", want: []string{"from"}},
		{name: "No match", prefix: "zz", want: nil},
		{name: "Case sensitive", prefix: "SE", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, v.Complete(tt.prefix))
		})
	}
}
