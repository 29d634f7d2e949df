package tickreport

import "testing"

func TestParseObservation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Observation
	}{
		{
			name:    "canonical file",
			content: "Price: 123.45\nUpdated: 2025-07-01 10:00:00\n",
			want:    Observation{Price: 123.45, HasPrice: true, Timestamp: "2025-07-01 10:00:00"},
		},
		{
			name:    "extra whitespace is trimmed",
			content: "Price:    42.5   \nUpdated:   yesterday  \n",
			want:    Observation{Price: 42.5, HasPrice: true, Timestamp: "yesterday"},
		},
		{
			name:    "no trailing newline",
			content: "Price: 7\nUpdated: t1",
			want:    Observation{Price: 7, HasPrice: true, Timestamp: "t1"},
		},
		{
			name:    "price only",
			content: "Price: 10.0\n",
			want:    Observation{Price: 10, HasPrice: true},
		},
		{
			name:    "timestamp only",
			content: "Updated: 2025-07-01\n",
			want:    Observation{Timestamp: "2025-07-01"},
		},
		{
			name:    "empty content",
			content: "",
			want:    Observation{},
		},
		{
			name:    "unrecognized lines are ignored",
			content: "Ticker: AAPL\nPrice: 5\nNote: stale feed\nUpdated: t\n",
			want:    Observation{Price: 5, HasPrice: true, Timestamp: "t"},
		},
		{
			name:    "malformed price leaves price absent",
			content: "Price: not-a-number\nUpdated: t\n",
			want:    Observation{Timestamp: "t"},
		},
		{
			name:    "malformed price keeps earlier valid price",
			content: "Price: 10\nPrice: oops\n",
			want:    Observation{Price: 10, HasPrice: true},
		},
		{
			name:    "last valid occurrence wins",
			content: "Price: 1\nPrice: 2\nUpdated: t1\nUpdated: t2\n",
			want:    Observation{Price: 2, HasPrice: true, Timestamp: "t2"},
		},
		{
			name:    "negative and scientific prices parse",
			content: "Price: -3.5e1\n",
			want:    Observation{Price: -35, HasPrice: true},
		},
		{
			name:    "prefix must start the line",
			content: "  Price: 9\nlast Updated: t\n",
			want:    Observation{},
		},
		{
			name:    "empty price value is absent",
			content: "Price:\nUpdated:\n",
			want:    Observation{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseObservation(tc.content)
			if got != tc.want {
				t.Errorf("ParseObservation() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestObservation_timestampOr(t *testing.T) {
	withStamp := Observation{Timestamp: "2025-07-01 10:00:00"}
	if got := withStamp.timestampOr("fallback"); got != "2025-07-01 10:00:00" {
		t.Errorf("timestampOr() = %q, want the observation's own timestamp", got)
	}
	var empty Observation
	if got := empty.timestampOr("fallback"); got != "fallback" {
		t.Errorf("timestampOr() = %q, want %q", got, "fallback")
	}
}
