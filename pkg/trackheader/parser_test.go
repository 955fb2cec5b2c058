package trackheader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gbcatalog/pkg/trackheader"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		offset int
		want   []trackheader.Attribute
	}{
		{
			name:   "bare values",
			line:   "variableStep chrom=chr1 span=25",
			offset: 13,
			want: []trackheader.Attribute{
				{Name: "chrom", Value: "chr1"},
				{Name: "span", Value: "25"},
			},
		},
		{
			name:   "quoted value keeps whitespace",
			line:   `track type=wiggle_0 name="GC content" description="GC  percent, 50bp"`,
			offset: 6,
			want: []trackheader.Attribute{
				{Name: "type", Value: "wiggle_0"},
				{Name: "name", Value: "GC content"},
				{Name: "description", Value: "GC  percent, 50bp"},
			},
		},
		{
			name:   "empty quoted value is present",
			line:   `track name="" visibility=full`,
			offset: 6,
			want: []trackheader.Attribute{
				{Name: "name", Value: ""},
				{Name: "visibility", Value: "full"},
			},
		},
		{
			name:   "last occurrence wins",
			line:   "chrom=chr1 start=100 chrom=chr2",
			offset: 0,
			want: []trackheader.Attribute{
				{Name: "chrom", Value: "chr2"},
				{Name: "start", Value: "100"},
			},
		},
		{
			name:   "names with dots and dashes",
			line:   "track db.version=hg19 max-height=128:64:11",
			offset: 6,
			want: []trackheader.Attribute{
				{Name: "db.version", Value: "hg19"},
				{Name: "max-height", Value: "128:64:11"},
			},
		},
		{
			name:   "name without equals contributes nothing",
			line:   "track autoScale name=x",
			offset: 6,
			want:   []trackheader.Attribute{{Name: "name", Value: "x"}},
		},
		{
			name:   "unterminated quote falls back to bare value",
			line:   `track name="open`,
			offset: 6,
			want:   []trackheader.Attribute{{Name: "name", Value: `"open`}},
		},
		{
			name:   "nothing matches",
			line:   "track = = ==",
			offset: 6,
			want:   []trackheader.Attribute{},
		},
		{
			name:   "offset past end",
			line:   "track",
			offset: 6,
			want:   []trackheader.Attribute{},
		},
		{
			name:   "negative offset scans whole line",
			line:   "a=1",
			offset: -3,
			want:   []trackheader.Attribute{{Name: "a", Value: "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trackheader.Parse(tt.line, tt.offset)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.List())
			assert.Equal(t, len(tt.want), got.Len())
		})
	}
}

func TestParse_OffsetSkipsKeywordAttributes(t *testing.T) {
	// The offset hides anything inside the skipped prefix.
	got := trackheader.Parse("a=1 b=2", 4)
	assert.False(t, got.Has("a"))
	assert.Equal(t, "2", got.Value("b"))
}

func TestParseHeader(t *testing.T) {
	t.Run("variableStep", func(t *testing.T) {
		kw, attrs, ok := trackheader.ParseHeader("variableStep chrom=chrX span=1")
		require.True(t, ok)
		assert.Equal(t, trackheader.KeywordVariableStep, kw)
		assert.Equal(t, map[string]string{"chrom": "chrX", "span": "1"}, attrs.Map())
	})

	t.Run("track", func(t *testing.T) {
		kw, attrs, ok := trackheader.ParseHeader(`track name="Halo GC"`)
		require.True(t, ok)
		assert.Equal(t, trackheader.KeywordTrack, kw)
		assert.Equal(t, "Halo GC", attrs.Value("name"))
	})

	t.Run("keyword alone", func(t *testing.T) {
		_, attrs, ok := trackheader.ParseHeader("track")
		require.True(t, ok)
		assert.Equal(t, 0, attrs.Len())
	})

	t.Run("not a header", func(t *testing.T) {
		for _, line := range []string{"1001 0.52", "tracking=1", "fixedStep chrom=chr1", ""} {
			_, _, ok := trackheader.ParseHeader(line)
			assert.False(t, ok, line)
		}
	})
}
