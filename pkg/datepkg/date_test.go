package datepkg

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "OK", input: "20230626", want: New(2023, time.June, 26)},
		{name: "LeapDay", input: "20240229", want: New(2024, time.February, 29)},
		{name: "NoLeapDay", input: "20230229", wantErr: true},
		{name: "MonthOutOfRange", input: "20231301", wantErr: true},
		{name: "Dashes", input: "2023-06-26", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.input, got.String())
		})
	}
}

func TestAddNormalizes(t *testing.T) {
	d := New(2023, time.June, 1).Add(-1)
	require.Equal(t, New(2023, time.May, 31), d)

	d = New(2023, time.December, 31).Add(1)
	require.Equal(t, New(2024, time.January, 1), d)
}

func TestCompare(t *testing.T) {
	a := MustParse("20230501")
	b := MustParse("20230615")

	require.True(t, a.Before(b))
	require.True(t, b.After(a))
	require.False(t, a.After(a))
	require.Equal(t, 0, a.Compare(MustParse("20230501")))
	require.Equal(t, -1, MustParse("20221231").Compare(a))
}

func TestMonth(t *testing.T) {
	testCases := []struct {
		input string
		days  int
		last  string
	}{
		{input: "202306", days: 30, last: "20230630"},
		{input: "202302", days: 28, last: "20230228"},
		{input: "202402", days: 29, last: "20240229"},
		{input: "202312", days: 31, last: "20231231"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.input, func(t *testing.T) {
			m, err := ParseMonth(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.days, m.Days())
			require.Equal(t, tc.last, m.Last().String())
			require.Equal(t, 1, m.First().Day())
			require.True(t, m.Contains(m.Last()))
			require.False(t, m.Contains(m.Last().Add(1)))
			require.Equal(t, tc.input, m.String())
		})
	}

	_, err := ParseMonth("202313")
	require.Error(t, err)

	require.Equal(t, Month{Year: 2024, Month: time.January}, NewMonth(2023, 13))
}

func TestJSON(t *testing.T) {
	type payload struct {
		Date  Date  `json:"date"`
		Month Month `json:"month"`
	}

	in := payload{Date: MustParse("20230626"), Month: NewMonth(2023, time.June)}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"20230626","month":"202306"}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)

	require.Error(t, json.Unmarshal([]byte(`{"date":"2023-06-26"}`), &out))
}
