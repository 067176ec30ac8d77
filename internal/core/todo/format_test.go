package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	utc := time.UTC
	plus2 := time.FixedZone("plus2", 2*60*60)

	tests := []struct {
		name   string
		raw    string
		loc    *time.Location
		layout string
		want   string
	}{
		{
			name: "rfc3339 with offset",
			raw:  "2025-03-01T10:15:30+02:00",
			loc:  utc,
			want: "2025-03-01 08:15:30",
		},
		{
			name: "fractional seconds",
			raw:  "2025-03-01T10:15:30.123456789Z",
			loc:  plus2,
			want: "2025-03-01 12:15:30",
		},
		{
			name:   "custom layout",
			raw:    "2025-03-01T10:15:30Z",
			loc:    utc,
			layout: "02 Jan 2006",
			want:   "01 Mar 2025",
		},
		{
			name: "unparseable is verbatim",
			raw:  "yesterday",
			loc:  utc,
			want: "yesterday",
		},
		{
			name: "empty is verbatim",
			raw:  "",
			loc:  utc,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.raw, tt.loc, tt.layout))
		})
	}
}

func TestTodo_CreatedUpdated(t *testing.T) {
	td := Todo{CreatedAt: "2025-03-01T10:15:30Z", UpdatedAt: "garbage"}

	created, ok := td.Created()
	assert.True(t, ok)
	assert.Equal(t, 2025, created.Year())

	_, ok = td.Updated()
	assert.False(t, ok)
}

func TestChanges_IsEmpty(t *testing.T) {
	assert.True(t, Changes{}.IsEmpty())
	assert.False(t, Changes{Status: "Done"}.IsEmpty())
}
