package web

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type request struct {
	Date   string `validate:"required,yyyymmdd"`
	Month  string `validate:"required,yyyymm"`
	Amount string `validate:"required,amount"`
	Type   string `validate:"required,txtype"`
}

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidations(v))

	valid := request{Date: "20230626", Month: "202306", Amount: "100.50", Type: "w"}
	require.NoError(t, v.Struct(valid))

	testCases := []struct {
		name      string
		mutate    func(r *request)
		wantField string
		wantMsg   string
	}{
		{
			name:      "Date",
			mutate:    func(r *request) { r.Date = "2023-06-26" },
			wantField: "Date",
			wantMsg:   " should be in YYYYMMdd format",
		},
		{
			name:      "Month",
			mutate:    func(r *request) { r.Month = "202313" },
			wantField: "Month",
			wantMsg:   " should be in YYYYMM format",
		},
		{
			name:      "Amount",
			mutate:    func(r *request) { r.Amount = "1.001" },
			wantField: "Amount",
			wantMsg:   " should be greater than 0 with at most 2 decimals",
		},
		{
			name:      "Type",
			mutate:    func(r *request) { r.Type = "I" },
			wantField: "Type",
			wantMsg:   " should be D or W",
		},
		{
			name:      "Required",
			mutate:    func(r *request) { r.Amount = "" },
			wantField: "Amount",
			wantMsg:   " is required",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)

			err := v.Struct(r)

			var ve validator.ValidationErrors
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.wantField, ve[0].Field())
			require.Equal(t, tc.wantMsg, GetErrorMsg(ve[0]))
		})
	}
}
